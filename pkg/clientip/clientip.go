package clientip

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are consulted in order before RemoteAddr.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Resolver finds the client address of a request.
type Resolver struct {
	headers []string
}

// NewResolver trusts the given proxy headers in order. Without headers
// only RemoteAddr is used, which is right when nothing sits in front of
// the service.
func NewResolver(headers ...string) *Resolver {
	return &Resolver{headers: headers}
}

// GetIP uses DefaultHeaders.
func GetIP(r *http.Request) string {
	return NewResolver(DefaultHeaders...).IP(r)
}

// IP returns the normalized client address or "" when none is valid.
// For list headers like X-Forwarded-For the first valid entry wins.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := normalize(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}

// Middleware stores the client address in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithIP(r.Context(), res.IP(r))))
	})
}

type contextKey struct{}

func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}
