// Package binder reads submitted form fields from HTTP requests.
//
// Form handles url-encoded and multipart bodies, JSON handles a flat JSON
// object. Both write into a Values map and return ErrBinderNotApplicable for
// requests they do not understand, so several binders can be chained:
//
//	var values binder.Values
//	for _, bind := range []func(*http.Request, any) error{binder.Form(), binder.JSON()} {
//		if err := bind(r, &values); err != nil && !errors.Is(err, binder.ErrBinderNotApplicable) {
//			return err
//		}
//	}
package binder
