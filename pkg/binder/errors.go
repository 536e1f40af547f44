package binder

import "errors"

var (
	ErrBinderNotApplicable  = errors.New("binder: not applicable to this request")
	ErrUnsupportedTarget    = errors.New("binder: unsupported bind target")
	ErrFailedToParseJSON    = errors.New("binder: failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("binder: failed to parse form data")
	ErrRequestBodyTooLarge  = errors.New("binder: request body too large")
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
)
