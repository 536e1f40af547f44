package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/cookie"
)

const (
	secret    = "this-is-a-very-long-secret-key-32-chars-long"
	oldSecret = "this-is-old-very-long-secret-key-32-chars-ok"
)

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{name: "no secrets", secrets: nil, wantErr: cookie.ErrNoSecret},
		{name: "empty secrets", secrets: []string{"", ""}, wantErr: cookie.ErrNoSecret},
		{name: "secret too short", secrets: []string{"short"}, wantErr: cookie.ErrSecretTooShort},
		{name: "valid secret", secrets: []string{secret}},
		{name: "rotation", secrets: []string{secret, oldSecret}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.New(tt.secrets)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateSecret(t *testing.T) {
	t.Parallel()
	s, err := cookie.GenerateSecret()
	require.NoError(t, err)
	_, err = cookie.New([]string{s})
	assert.NoError(t, err)

	other, err := cookie.GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

// roundTrip copies the cookies written to w onto a new request.
func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestManager_Defaults(t *testing.T) {
	t.Parallel()
	m, err := cookie.New([]string{secret}, cookie.WithSecure(true))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Set(w, "plain", "value", cookie.WithMaxAge(60))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "value", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 60, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	got, err := m.Get(roundTrip(w), "plain")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "plain")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()
	m, err := cookie.New([]string{secret})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		m.SetSigned(w, "sid", "token-123")

		got, err := m.GetSigned(roundTrip(w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "token-123", got)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		m.SetSigned(w, "sid", "token-123")
		c := w.Result().Cookies()[0]

		forged, err := cookie.New([]string{oldSecret})
		require.NoError(t, err)
		fw := httptest.NewRecorder()
		forged.SetSigned(fw, "sid", "token-456")
		_, sig, _ := strings.Cut(fw.Result().Cookies()[0].Value, ".")
		value, _, _ := strings.Cut(c.Value, ".")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: value + "." + sig})
		_, err = m.GetSigned(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"no-separator", "!!!.abc", "abc.!!!"} {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: "sid", Value: v})
			_, err := m.GetSigned(r, "sid")
			assert.ErrorIs(t, err, cookie.ErrInvalidFormat, v)
		}
	})

	t.Run("rotated secret", func(t *testing.T) {
		t.Parallel()
		old, err := cookie.New([]string{oldSecret})
		require.NoError(t, err)
		w := httptest.NewRecorder()
		old.SetSigned(w, "sid", "legacy")

		rotated, err := cookie.New([]string{secret, oldSecret})
		require.NoError(t, err)
		got, err := rotated.GetSigned(roundTrip(w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "legacy", got)
	})
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	m, err := cookie.New([]string{secret}, cookie.WithDomain("example.com"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Delete(w, "sid")

	c := w.Result().Cookies()[0]
	assert.Equal(t, "sid", c.Name)
	assert.Equal(t, "", c.Value)
	assert.Equal(t, "example.com", c.Domain)
	assert.Less(t, c.MaxAge, 0)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	_, err := cookie.NewFromConfig(cookie.Config{})
	assert.ErrorIs(t, err, cookie.ErrNoSecret)

	m, err := cookie.NewFromConfig(cookie.Config{Secrets: " " + secret + " , " + oldSecret, Secure: true})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Set(w, "a", "b")
	assert.True(t, w.Result().Cookies()[0].Secure)
}
