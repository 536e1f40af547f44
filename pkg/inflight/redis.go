package inflight

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only when it still holds our token, so a
// holder whose TTL expired cannot release someone else's claim.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard shares claims between processes through Redis keys with a TTL.
// The TTL bounds how long a crashed holder can block a key.
type RedisGuard struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration

	mu     sync.Mutex
	tokens map[string]string
}

// RedisOption configures a RedisGuard.
type RedisOption func(*RedisGuard)

// WithPrefix sets the key namespace. Default "inflight:".
func WithPrefix(p string) RedisOption {
	return func(g *RedisGuard) { g.prefix = p }
}

// WithTTL sets the claim expiry. Default two minutes.
func WithTTL(ttl time.Duration) RedisOption {
	return func(g *RedisGuard) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

func NewRedisGuard(client redis.UniversalClient, opts ...RedisOption) *RedisGuard {
	g := &RedisGuard{
		client: client,
		prefix: "inflight:",
		ttl:    2 * time.Minute,
		tokens: make(map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, g.prefix+key, token, g.ttl).Result()
	if err != nil {
		return errors.Join(ErrGuardUnavailable, err)
	}
	if !ok {
		return ErrInProgress
	}

	g.mu.Lock()
	g.tokens[key] = token
	g.mu.Unlock()
	return nil
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	g.mu.Lock()
	token, ok := g.tokens[key]
	delete(g.tokens, key)
	g.mu.Unlock()

	if !ok {
		return nil
	}
	if err := releaseScript.Run(ctx, g.client, []string{g.prefix + key}, token).Err(); err != nil {
		return errors.Join(ErrGuardUnavailable, err)
	}
	return nil
}
