// Package redis connects to Redis with github.com/redis/go-redis/v9, retrying until
// the server answers, and exposes a readiness probe for the HTTP health endpoint.
package redis
