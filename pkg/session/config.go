package session

import "time"

// Config holds visitor session settings.
type Config struct {
	CookieName  string        `env:"SESSION_COOKIE_NAME" envDefault:"contact_session"`
	IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"2h"`
	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"168h"`

	// ActivityUpdateThreshold is the minimum time between expiry extensions.
	ActivityUpdateThreshold time.Duration `env:"SESSION_ACTIVITY_UPDATE_THRESHOLD" envDefault:"5m"`

	// CleanupInterval for the memory store. Zero disables the sweep.
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		CookieName:              "contact_session",
		IdleTimeout:             2 * time.Hour,
		MaxLifetime:             7 * 24 * time.Hour,
		ActivityUpdateThreshold: 5 * time.Minute,
		CleanupInterval:         5 * time.Minute,
	}
}

// expiry is the earlier of the idle deadline and the lifetime cap.
func (c Config) expiry(createdAt, now time.Time) time.Time {
	idle := now.Add(c.IdleTimeout)
	if maxAt := createdAt.Add(c.MaxLifetime); maxAt.Before(idle) {
		return maxAt
	}
	return idle
}
