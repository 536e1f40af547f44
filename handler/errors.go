package handler

import "errors"

var (
	ErrNilResponse       = errors.New("handler: nil response")
	ErrSSENotInitialized = errors.New("handler: no SSE stream, request is not a DataStar request")
)
