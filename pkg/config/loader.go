package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	dotenvOnce sync.Once
)

// LoadEnvFiles loads the given dotenv files into the process environment.
// Variables already set in the environment win. With no arguments ".env" is used.
// A missing default ".env" is not an error; a missing explicit file is.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v according to its `env` struct tags.
// The default .env file is read once per process. Each configuration type is
// parsed once; later calls for the same type get the cached copy.
//
//	type Config struct {
//		ServiceID string        `env:"EMAIL_SERVICE_ID"`
//		Delay     time.Duration `env:"CONTACT_SUCCESS_DELAY" envDefault:"1500ms"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() { _ = LoadEnvFiles() })

	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration so the next Load re-reads the environment.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}
