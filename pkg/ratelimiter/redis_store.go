package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// consumeScript is the MemoryStore algorithm run atomically in Redis.
// Times are unix milliseconds.
var consumeScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local now = tonumber(ARGV[4])
local requested = tonumber(ARGV[5])

local state = redis.call("HMGET", KEYS[1], "tokens", "refill")
local tokens = tonumber(state[1])
local refill = tonumber(state[2])
if tokens == nil or refill == nil then
	tokens = capacity
	refill = now
end

local intervals = math.floor((now - refill) / interval)
local cap = math.floor(capacity / rate) + 1
if intervals > cap then
	intervals = cap
end
if intervals > 0 then
	tokens = math.min(tokens + intervals * rate, capacity)
	refill = now
end

tokens = tokens - requested
redis.call("HSET", KEYS[1], "tokens", tokens, "refill", refill)
redis.call("PEXPIRE", KEYS[1], cap * interval)
return {tokens, refill + interval}
`)

// RedisStore shares buckets between replicas.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRedisStore stores buckets under prefix (default "ratelimit:").
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

func (s *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	res, err := consumeScript.Run(ctx, s.client, []string{s.prefix + key},
		cfg.Capacity,
		cfg.RefillRate,
		cfg.RefillInterval.Milliseconds(),
		s.now().UnixMilli(),
		tokens,
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, ErrStoreUnavailable
	}
	return int(res[0]), time.UnixMilli(res[1]), nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
