package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is an anonymous visitor. Toasts and submit claims are keyed by its
// ID; the Token only travels in the cookie.
type Session struct {
	ID             uuid.UUID `json:"id"`
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// Key is the identifier other components scope visitor state by.
func (s *Session) Key() string {
	if s == nil {
		return ""
	}
	return s.ID.String()
}

func (s *Session) expiredAt(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}
