package cookie

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const minSecretLength = 32

// Manager writes and reads cookies, optionally signed with HMAC-SHA256.
type Manager struct {
	secrets  []string
	defaults Attributes
}

// New creates a Manager. Every secret must be at least 32 characters long.
// Defaults are Path "/", HttpOnly and SameSite Lax.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := Attributes{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{
		secrets:  secrets,
		defaults: defaults.with(opts),
	}, nil
}

// GenerateSecret returns a random secret long enough for New.
func GenerateSecret() (string, error) {
	b := make([]byte, minSecretLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	a := m.defaults.with(opts)
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     a.Path,
		Domain:   a.Domain,
		MaxAge:   a.MaxAge,
		Secure:   a.Secure,
		HttpOnly: a.HttpOnly,
		SameSite: a.SameSite,
	})
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the cookie using the default attributes.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}

func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) {
	m.Set(w, name, m.sign(value), opts...)
}

// GetSigned returns the value of a cookie written by SetSigned with any of
// the configured secrets.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	raw, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(raw)
}

func mac(secret string, value []byte) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(value)
	return h.Sum(nil)
}

func (m *Manager) sign(value string) string {
	sig := mac(m.secrets[0], []byte(value))
	return base64.RawURLEncoding.EncodeToString([]byte(value)) + "." + base64.RawURLEncoding.EncodeToString(sig)
}

func (m *Manager) verify(signed string) (string, error) {
	encoded, encodedSig, ok := strings.Cut(signed, ".")
	if !ok {
		return "", ErrInvalidFormat
	}
	value, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidFormat
	}
	sig, err := base64.RawURLEncoding.DecodeString(encodedSig)
	if err != nil {
		return "", ErrInvalidFormat
	}

	// Older secrets keep verifying so keys can rotate.
	for _, secret := range m.secrets {
		if hmac.Equal(sig, mac(secret, value)) {
			return string(value), nil
		}
	}
	return "", ErrInvalidSignature
}
