package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/contactkit/pkg/binder"
)

// HandlerFunc handles a request bound into a value of type R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from r. A binder that does not apply to r returns
// binder.ErrBinderNotApplicable and the next one is tried.
type Bind func(r *http.Request, v any) error

// ErrorHandler answers a request whose binding or rendering failed.
type ErrorHandler func(ctx Context, err error)

// Decorator wraps a HandlerFunc. The first decorator in a list is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapOptions[R])

type wrapOptions[R any] struct {
	binders    []Bind
	onError    ErrorHandler
	decorators []Decorator[R]
}

func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(o *wrapOptions[R]) {
		o.binders = append(o.binders, binders...)
	}
}

func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(o *wrapOptions[R]) {
		if h != nil {
			o.onError = h
		}
	}
}

func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(o *wrapOptions[R]) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// plainErrors answers with the HTTPError code and key, or a bare 500.
func plainErrors(ctx Context, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Wrap turns h into an http.HandlerFunc that binds the request, calls h and
// renders the response.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	o := wrapOptions[R]{onError: plainErrors}
	for _, opt := range opts {
		opt(&o)
	}
	for i := len(o.decorators) - 1; i >= 0; i-- {
		h = o.decorators[i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range o.binders {
			err := bind(r, &req)
			if errors.Is(err, binder.ErrBinderNotApplicable) {
				continue
			}
			if err != nil {
				o.onError(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			o.onError(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			o.onError(ctx, err)
		}
	}
}
