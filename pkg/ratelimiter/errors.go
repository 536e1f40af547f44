package ratelimiter

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig     = errors.New("ratelimiter: invalid configuration")
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token count")
	ErrStoreUnavailable  = errors.New("ratelimiter: store unavailable")
)

func errInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
