package ratelimiter

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
)

const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// Composite joins the non-empty keys of several functions with ":".
// Results longer than 64 bytes are replaced by their FNV-1a hash.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			h := fnv.New64a()
			h.Write([]byte(combined))
			return strconv.FormatUint(h.Sum64(), 36)
		}
		return combined
	}
}

// LimitedHandler writes the response for a denied request.
type LimitedHandler func(w http.ResponseWriter, r *http.Request, res *Result)

// ErrorHandler writes the response when the store fails.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type middlewareConfig struct {
	onLimited LimitedHandler
	onError   ErrorHandler
}

type MiddlewareOption func(*middlewareConfig)

// WithLimitedHandler replaces the plain 429 response.
func WithLimitedHandler(h LimitedHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onLimited = h
		}
	}
}

// WithErrorHandler replaces the plain 500 response.
func WithErrorHandler(h ErrorHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onError = h
		}
	}
}

// Middleware takes one token per request and rejects requests once the
// bucket for the request key is empty. Requests with an empty key pass.
func Middleware(b *Bucket, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		onLimited: func(w http.ResponseWriter, _ *http.Request, _ *Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), key)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if secs := int(res.RetryAfter().Seconds()); secs > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(secs))
				}
				cfg.onLimited(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
