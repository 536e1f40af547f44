package contactform

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/contactkit/pkg/cookie"
	"github.com/dmitrymomot/contactkit/pkg/session"
)

// ephemeralSessions keeps visitor sessions in memory, signed with a secret
// generated at startup. Sessions end with the process.
func ephemeralSessions(log *slog.Logger) (*session.Manager, error) {
	secret, err := cookie.GenerateSecret()
	if err != nil {
		return nil, err
	}
	cookies, err := cookie.New([]string{secret})
	if err != nil {
		return nil, err
	}
	return session.New(
		session.WithCookieManager(cookies),
		session.WithLogger(log),
	)
}

// allowsAnyOrigin reports a wildcard CORS list. Credentials are never shared
// with a wildcard since the CORS middleware would echo every origin.
func allowsAnyOrigin(origins []string) bool {
	return len(origins) == 0 || slices.Contains(origins, "*")
}
