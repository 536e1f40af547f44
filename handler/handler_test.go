package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/handler"
	"github.com/dmitrymomot/contactkit/pkg/binder"
	"github.com/dmitrymomot/contactkit/pkg/validator"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func formRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func dataStarRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("Accept", "text/event-stream")
	return r
}

func TestWrap_BindsWithApplicableBinders(t *testing.T) {
	t.Parallel()

	var got binder.Values
	h := handler.Wrap(func(_ handler.Context, v binder.Values) handler.Response {
		got = v
		return handler.Empty()
	}, handler.WithBinders[binder.Values](binder.JSON(), binder.Form()))

	w := httptest.NewRecorder()
	h(w, formRequest("name=Ann&email=ann%40example.com"))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, binder.Values{"name": "Ann", "email": "ann@example.com"}, got)
}

func TestWrap_BindErrorGoesToErrorHandler(t *testing.T) {
	t.Parallel()

	var handled error
	h := handler.Wrap(func(handler.Context, binder.Values) handler.Response {
		t.Fatal("handler must not run")
		return nil
	},
		handler.WithBinders[binder.Values](binder.JSON()),
		handler.WithErrorHandler[binder.Values](func(_ handler.Context, err error) {
			handled = err
		}),
	)

	r := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("{"))
	r.Header.Set("Content-Type", "application/json")
	h(httptest.NewRecorder(), r)

	assert.ErrorIs(t, handled, binder.ErrFailedToParseJSON)
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(handler.Context, struct{}) handler.Response { return nil })
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWrap_DecoratorOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	mark := func(name string) handler.Decorator[struct{}] {
		return func(next handler.HandlerFunc[struct{}]) handler.HandlerFunc[struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				calls = append(calls, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		calls = append(calls, "handler")
		return handler.Empty()
	}, handler.WithDecorators(mark("outer"), mark("inner")))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestWrap_DefaultErrorHandlerUsesHTTPError(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return failing{err: handler.ErrConflict}
	})
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "conflict")
}

type failing struct{ err error }

func (f failing) Render(http.ResponseWriter, *http.Request) error { return f.err }

func TestContext(t *testing.T) {
	t.Parallel()

	plain := handler.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Nil(t, plain.SSE())

	w := httptest.NewRecorder()
	ds := handler.NewContext(w, dataStarRequest(http.MethodPost, "/contact"))
	sse := ds.SSE()
	require.NotNil(t, sse)
	assert.Same(t, sse, ds.SSE())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	assert.True(t, handler.IsDataStar(dataStarRequest(http.MethodGet, "/")))
	assert.True(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)))
	assert.False(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/", nil)))

	api := httptest.NewRequest(http.MethodPost, "/", nil)
	api.Header.Set("Accept", "application/json")
	assert.True(t, handler.WantsJSON(api))
	assert.False(t, handler.WantsJSON(dataStarRequest(http.MethodGet, "/")))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.JSON(map[string]string{"outcome": "delivered"}).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"outcome":"delivered"}}`, w.Body.String())
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidationErrors{
			{Field: "email", Message: "invalid email"},
			{Field: "name", Message: "required"},
		}
		w := httptest.NewRecorder()
		require.NoError(t, handler.JSONError(err).Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"invalid email"}, body.Error.Details["email"])
		assert.Equal(t, []string{"required"}, body.Error.Details["name"])
	})

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.JSONError(handler.ErrTooManyRequests).Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":{"code":"too_many_requests","message":"Too Many Requests"}}`, w.Body.String())
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.JSONError(errors.New("db password leaked"), handler.WithJSONMessage("oops")).
			Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
		assert.Contains(t, w.Body.String(), "oops")
	})
}

func TestTempl(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.Templ(text("<p>hi</p>")).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, "<p>hi</p>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = httptest.NewRecorder()
	resp := handler.TemplMulti(
		handler.Patch(text(`<div id="modal">m</div>`), handler.WithTarget("#modal-root"), handler.WithPatchMode(handler.PatchInner)),
		handler.Patch(text(`<div id="form">f</div>`)),
	)
	require.NoError(t, resp.Render(w, dataStarRequest(http.MethodGet, "/cta/demo")))
	body := w.Body.String()
	assert.Equal(t, 2, strings.Count(body, "datastar-patch-elements"))
	assert.Contains(t, body, "#modal-root")
	assert.Contains(t, body, `<div id="form">f</div>`)
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/done").Render(w, httptest.NewRequest(http.MethodGet, "/cta/quote", nil)))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/done", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/done").Render(w, dataStarRequest(http.MethodGet, "/cta/quote")))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, w.Body.String(), "/done")
}

func TestSSE(t *testing.T) {
	t.Parallel()

	resp := handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendSignals(map[string]any{"submitting": true}); err != nil {
			return err
		}
		if err := stream.SendComponent(text(`<div id="t1">x</div>`), handler.WithTarget("#toasts"), handler.WithPatchMode(handler.PatchAppend)); err != nil {
			return err
		}
		return stream.Remove("#t1")
	})

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, dataStarRequest(http.MethodGet, "/toasts")))
	body := w.Body.String()
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `"submitting":true`)
	assert.Contains(t, body, "#t1")

	err := resp.Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/toasts", nil))
	var httpErr handler.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestHelpersWithoutStream(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, handler.PatchSignals(nil, map[string]any{"a": 1}), handler.ErrSSENotInitialized)
	assert.ErrorIs(t, handler.RemoveElement(nil, "#x"), handler.ErrSSENotInitialized)
}

func TestStreamed(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.Streamed().Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	require.NoError(t, handler.EmptyWithStatus(http.StatusAccepted).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestError(t *testing.T) {
	t.Parallel()

	var handled error
	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}, handler.WithErrorHandler[struct{}](func(_ handler.Context, err error) {
		handled = err
	}))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, handled, handler.ErrNotFound)
}
