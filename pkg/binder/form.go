package binder

import (
	"errors"
	"net/http"
)

// DefaultMaxMemory is the memory limit for parsing multipart forms.
const DefaultMaxMemory = 1 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies into *Values. Other requests are reported as not applicable.
//
//	http.HandleFunc("/contact", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, binder.Values](binder.Form(), binder.JSON()),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return ErrBinderNotApplicable
		}

		var values map[string][]string
		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return formError(err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return formError(err)
			}
			values = r.MultipartForm.Value
		default:
			return ErrBinderNotApplicable
		}

		dst, err := target(v)
		if err != nil {
			return err
		}
		for name, vals := range values {
			if len(vals) > 0 {
				(*dst)[name] = vals[0]
			}
		}
		return nil
	}
}

func formError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errors.Join(ErrRequestBodyTooLarge, err)
	}
	return errors.Join(ErrFailedToParseForm, err)
}
