// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env, after reading an optional .env file with github.com/joho/godotenv.
// Each package declares its own Config struct with `env` tags and loads it through Load.
package config
