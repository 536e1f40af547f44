package inflight_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/inflight"
)

func exerciseGuard(t *testing.T, g inflight.Guard, key string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, g.Acquire(ctx, key))
	assert.ErrorIs(t, g.Acquire(ctx, key), inflight.ErrInProgress)
	require.NoError(t, g.Acquire(ctx, key+"-other"), "keys are independent")

	require.NoError(t, g.Release(ctx, key))
	require.NoError(t, g.Acquire(ctx, key), "released key can be claimed again")

	require.NoError(t, g.Release(ctx, key))
	require.NoError(t, g.Release(ctx, key+"-other"))
	require.NoError(t, g.Release(ctx, "never-held"))

	assert.ErrorIs(t, g.Acquire(ctx, ""), inflight.ErrEmptyKey)
}

func TestMemoryGuard(t *testing.T) {
	t.Parallel()
	g := inflight.NewMemoryGuard()
	exerciseGuard(t, g, "session:contact")
	assert.False(t, g.Held("session:contact"))
}

func TestMemoryGuard_ConcurrentAcquire(t *testing.T) {
	t.Parallel()
	g := inflight.NewMemoryGuard()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Acquire(context.Background(), "k") == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.True(t, g.Held("k"))
}

func TestRedisGuard(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	prefix := fmt.Sprintf("test:%d:", time.Now().UnixNano())
	g := inflight.NewRedisGuard(client, inflight.WithPrefix(prefix), inflight.WithTTL(time.Minute))
	exerciseGuard(t, g, "session:contact")

	// A second process cannot release a claim it does not own.
	ctx := context.Background()
	require.NoError(t, g.Acquire(ctx, "shared"))
	other := inflight.NewRedisGuard(client, inflight.WithPrefix(prefix))
	require.NoError(t, other.Release(ctx, "shared"))
	assert.ErrorIs(t, other.Acquire(ctx, "shared"), inflight.ErrInProgress)
	require.NoError(t, g.Release(ctx, "shared"))
}
