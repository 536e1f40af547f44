package inflight

import "errors"

var (
	ErrInProgress       = errors.New("inflight: operation already in progress")
	ErrEmptyKey         = errors.New("inflight: empty key")
	ErrGuardUnavailable = errors.New("inflight: guard backend unavailable")
)
