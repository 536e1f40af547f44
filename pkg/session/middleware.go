package session

import (
	"net/http"

	"github.com/dmitrymomot/contactkit/pkg/logger"
)

// EnsureSession makes sure every request carries a session in its context.
func (m *Manager) EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.Ensure(r.Context(), w, r)
		if err != nil {
			m.logger.ErrorContext(r.Context(), "failed to ensure session", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}
