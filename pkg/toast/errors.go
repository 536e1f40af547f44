package toast

import "errors"

var (
	ErrInvalidLevel  = errors.New("toast: invalid level")
	ErrEmptyMessage  = errors.New("toast: empty message")
	ErrEmptySession  = errors.New("toast: empty session")
	ErrToastNotFound = errors.New("toast: not found")
)
