package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/contactkit/pkg/cookie"
	"github.com/dmitrymomot/contactkit/pkg/logger"
)

// Manager hands out anonymous visitor sessions.
type Manager struct {
	store      Store
	transport  Transport
	config     Config
	cookies    *cookie.Manager
	cookieOpts []cookie.Option
	now        func() time.Time
	logger     *slog.Logger
}

// New creates a Manager. Without WithTransport a cookie manager is required.
func New(opts ...Option) (*Manager, error) {
	m := &Manager{
		config: DefaultConfig(),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.transport == nil {
		if m.cookies == nil {
			return nil, ErrNoTransport
		}
		m.transport = NewCookieTransport(m.cookies, m.config.CookieName, m.cookieOpts...)
	}
	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}
	m.logger = m.logger.With(logger.Component("session"))
	return m, nil
}

// Ensure returns the session of the request, creating and sending a new one
// when the token is missing, expired or unknown.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	s, err := m.Get(ctx, r)
	switch {
	case err == nil:
		m.extend(ctx, w, s)
		return s, nil
	case errors.Is(err, ErrStore):
		return nil, err
	}

	s, err = m.create(ctx)
	if err != nil {
		return nil, err
	}
	m.transport.SetToken(w, s.Token, s.ExpiresAt.Sub(s.CreatedAt))
	return s, nil
}

// Get returns the session of the request without creating one.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}
	s, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.expiredAt(m.now()) {
		return nil, ErrSessionExpired
	}
	return s, nil
}

func (m *Manager) create(ctx context.Context) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	now := m.now()
	s := &Session{
		ID:             uuid.New(),
		Token:          token,
		ExpiresAt:      m.config.expiry(now, now),
		LastActivityAt: now,
		CreatedAt:      now,
	}
	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// extend slides the idle expiry once per ActivityUpdateThreshold. A failed
// extension keeps the current expiry.
func (m *Manager) extend(ctx context.Context, w http.ResponseWriter, s *Session) {
	now := m.now()
	if now.Sub(s.LastActivityAt) < m.config.ActivityUpdateThreshold {
		return
	}
	expiresAt := m.config.expiry(s.CreatedAt, now)
	if err := m.store.Extend(ctx, s.Token, now, expiresAt); err != nil {
		m.logger.WarnContext(ctx, "failed to extend session", logger.Session(s.Key()), logger.Error(err))
		return
	}
	s.LastActivityAt, s.ExpiresAt = now, expiresAt
	m.transport.SetToken(w, s.Token, expiresAt.Sub(now))
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
