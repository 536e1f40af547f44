package ratelimiter

import "time"

// Result is the state of a bucket after a check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the checked request fit in the bucket.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long a denied caller should wait. Zero when allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Config defines a token bucket: Capacity is the burst size and
// RefillRate tokens are added every RefillInterval.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"5"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"12s"`
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return errInvalid("capacity must be positive, got %d", c.Capacity)
	case c.RefillRate <= 0:
		return errInvalid("refill rate must be positive, got %d", c.RefillRate)
	case c.RefillInterval <= 0:
		return errInvalid("refill interval must be positive, got %v", c.RefillInterval)
	}
	return nil
}
