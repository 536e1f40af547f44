package session

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/contactkit/pkg/logger"
)

type contextKey struct{}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored by the middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// KeyFromContext returns the key of the session in ctx, or "".
func KeyFromContext(ctx context.Context) string {
	s, _ := FromContext(ctx)
	return s.Key()
}

// LoggerExtractor adds the session key to records logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if key := KeyFromContext(ctx); key != "" {
			return logger.Session(key), true
		}
		return slog.Attr{}, false
	}
}
