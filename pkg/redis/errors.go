package redis

import "errors"

var (
	ErrEmptyURL   = errors.New("redis: REDIS_URL is empty")
	ErrInvalidURL = errors.New("redis: cannot parse connection url")
	ErrNotReady   = errors.New("redis: server did not answer before the connect timeout")
	ErrPing       = errors.New("redis: ping failed")
)
