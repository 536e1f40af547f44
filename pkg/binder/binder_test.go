package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/binder"
)

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("url encoded", func(t *testing.T) {
		t.Parallel()
		body := url.Values{"name": {"Ann", "ignored"}, "email": {"ann@example.com"}}.Encode()
		r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var v binder.Values
		require.NoError(t, binder.Form()(r, &v))
		assert.Equal(t, "Ann", v["name"])
		assert.Equal(t, "ann@example.com", v.Get("email"))
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("message", "hello"))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/contact", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		v := map[string]string{}
		require.NoError(t, binder.Form()(r, &v))
		assert.Equal(t, "hello", v["message"])
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		get := httptest.NewRequest(http.MethodGet, "/contact?name=x", nil)
		var v binder.Values
		assert.ErrorIs(t, binder.Form()(get, &v), binder.ErrBinderNotApplicable)

		post := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{}`))
		post.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, binder.Form()(post, &v), binder.ErrBinderNotApplicable)
	})

	t.Run("unsupported target", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=x"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		var s struct{ Name string }
		assert.ErrorIs(t, binder.Form()(r, &s), binder.ErrUnsupportedTarget)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("flat object", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/contact",
			strings.NewReader(`{"name":"Ann","phone":5551234,"subscribe":true,"meta":{"a":1},"company":null}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var v binder.Values
		require.NoError(t, binder.JSON()(r, &v))
		assert.Equal(t, binder.Values{"name": "Ann", "phone": "5551234", "subscribe": "true"}, v)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":`))
		r.Header.Set("Content-Type", "application/json")
		var v binder.Values
		assert.ErrorIs(t, binder.JSON()(r, &v), binder.ErrFailedToParseJSON)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		big := `{"message":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(big))
		r.Header.Set("Content-Type", "application/json")
		var v binder.Values
		assert.ErrorIs(t, binder.JSON()(r, &v), binder.ErrRequestBodyTooLarge)
	})

	t.Run("not applicable", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=x"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		var v binder.Values
		assert.ErrorIs(t, binder.JSON()(r, &v), binder.ErrBinderNotApplicable)
	})
}
