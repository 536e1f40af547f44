package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/redis"
)

func TestConnect_ConfigErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := redis.Connect(ctx, redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyURL)

	_, err = redis.Connect(ctx, redis.Config{ConnectionURL: "http://not-redis"})
	assert.ErrorIs(t, err, redis.ErrInvalidURL)

	assert.False(t, redis.Config{}.Enabled())
	assert.True(t, redis.Config{ConnectionURL: "redis://localhost:6379/0"}.Enabled())
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrNotReady)
}

func TestConnect_Live(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	client, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: url, RetryAttempts: 1, ConnectTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, redis.Healthcheck(client)(context.Background()))
}
