package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/contactkit/pkg/cookie"
)

// Transport carries the session token between client and server.
type Transport interface {
	GetToken(r *http.Request) (string, error)
	SetToken(w http.ResponseWriter, token string, ttl time.Duration)
	ClearToken(w http.ResponseWriter)
}

// CookieTransport keeps the token in a signed cookie.
type CookieTransport struct {
	cookies *cookie.Manager
	name    string
	opts    []cookie.Option
}

func NewCookieTransport(cookies *cookie.Manager, name string, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{cookies: cookies, name: name, opts: opts}
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.cookies.GetSigned(r, t.name)
	if err != nil || token == "" {
		return "", ErrSessionNotFound
	}
	return token, nil
}

func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) {
	opts := append([]cookie.Option{cookie.WithMaxAge(int(ttl.Seconds()))}, t.opts...)
	t.cookies.SetSigned(w, t.name, token, opts...)
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) {
	t.cookies.Delete(w, t.name)
}
