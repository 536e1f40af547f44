package session

import (
	"context"
	"time"
)

// Store persists sessions by token.
type Store interface {
	Create(ctx context.Context, s *Session) error
	// Get returns ErrSessionNotFound or ErrSessionExpired for unusable tokens.
	Get(ctx context.Context, token string) (*Session, error)
	// Extend moves the expiry and the last activity of an existing session.
	Extend(ctx context.Context, token string, lastActivity, expiresAt time.Time) error
	Delete(ctx context.Context, token string) error
}
