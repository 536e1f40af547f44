package ratelimiter_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testConfig = ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: 10 * time.Second}

func TestBucket_Refill(t *testing.T) {
	t.Parallel()

	clk := &clock{now: time.Unix(1_700_000_000, 0)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clk.Now))
	bucket, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)
	ctx := context.Background()

	for i := range 3 {
		res, err := bucket.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := bucket.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	other, err := bucket.Allow(ctx, "other")
	require.NoError(t, err)
	assert.True(t, other.Allowed(), "keys are independent")

	// Denied request took a token too: -1 plus two refills is 1.
	clk.Advance(20 * time.Second)
	res, err = bucket.Status(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)

	// Refill never exceeds capacity.
	clk.Advance(time.Hour)
	res, err = bucket.Status(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining)

	require.NoError(t, bucket.Reset(ctx, "ip"))
	_, err = bucket.AllowN(ctx, "ip", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1},
	} {
		_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
}

func TestMemoryStore_Sweep(t *testing.T) {
	t.Parallel()

	clk := &clock{now: time.Unix(1_700_000_000, 0)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clk.Now))
	defer store.Close()

	_, _, err := store.ConsumeTokens(context.Background(), "k", 1, testConfig)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	clk.Advance(2 * time.Hour)
	store.Sweep()
	assert.Zero(t, store.Len())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	bucket, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)

	var limited int
	mw := ratelimiter.Middleware(bucket,
		func(r *http.Request) string { return r.Header.Get("X-Client") },
		ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, _ *http.Request, res *ratelimiter.Result) {
			limited++
			w.WriteHeader(http.StatusTooManyRequests)
		}),
	)
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(client string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		if client != "" {
			req.Header.Set("X-Client", client)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := range testConfig.Capacity {
		rec := do("a")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(testConfig.Capacity-i-1), rec.Header().Get("X-RateLimit-Remaining"))
	}

	rec := do("a")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, 1, limited)

	assert.Equal(t, http.StatusNoContent, do("b").Code)
	assert.Equal(t, http.StatusNoContent, do("").Code, "empty key is not limited")
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, ratelimiter.ErrStoreUnavailable
}

func (failingStore) Reset(context.Context, string) error { return nil }

func TestMiddleware_StoreError(t *testing.T) {
	t.Parallel()

	bucket, err := ratelimiter.NewBucket(failingStore{}, testConfig)
	require.NoError(t, err)

	var got error
	h := ratelimiter.Middleware(bucket,
		func(*http.Request) string { return "k" },
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
			got = err
			w.WriteHeader(http.StatusServiceUnavailable)
		}),
	)(http.NotFoundHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.True(t, errors.Is(got, ratelimiter.ErrStoreUnavailable))
}

func TestComposite(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	static := func(v string) ratelimiter.KeyFunc { return func(*http.Request) string { return v } }

	assert.Equal(t, "a:b", ratelimiter.Composite(static("a"), static(""), static("b"))(req))
	assert.Empty(t, ratelimiter.Composite(static(""))(req))

	long := ratelimiter.Composite(static(fmt.Sprintf("%070d", 1)))(req)
	assert.LessOrEqual(t, len(long), 13)
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	store := ratelimiter.NewRedisStore(client, fmt.Sprintf("test:rl:%d:", time.Now().UnixNano()))
	bucket, err := ratelimiter.NewBucket(store, testConfig)
	require.NoError(t, err)
	ctx := context.Background()

	for range testConfig.Capacity {
		res, err := bucket.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	}
	res, err := bucket.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	require.NoError(t, bucket.Reset(ctx, "ip"))
	res, err = bucket.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining)
}
