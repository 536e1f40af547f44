package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/contactkit/pkg/cookie"
)

// Option configures a Manager.
type Option func(*Manager)

// WithStore replaces the memory store.
func WithStore(s Store) Option {
	return func(m *Manager) { m.store = s }
}

// WithTransport replaces the cookie transport.
func WithTransport(t Transport) Option {
	return func(m *Manager) { m.transport = t }
}

// WithConfig sets the timeouts and the cookie name.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.config = cfg }
}

// WithCookieManager builds the default cookie transport on cookies.
func WithCookieManager(cookies *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookies = cookies
		m.cookieOpts = opts
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}
