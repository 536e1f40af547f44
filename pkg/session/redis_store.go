package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares sessions between processes. Keys expire with the session.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a store under prefix, "session:" when empty.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "session:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) save(ctx context.Context, s *Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.prefix+s.Token, data, ttl).Err(); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	if s == nil || s.Token == "" {
		return ErrInvalidSession
	}
	return r.save(ctx, s)
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := r.client.Get(ctx, r.prefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}
	if s.expiredAt(time.Now()) {
		return nil, ErrSessionExpired
	}
	return &s, nil
}

func (r *RedisStore) Extend(ctx context.Context, token string, lastActivity, expiresAt time.Time) error {
	s, err := r.Get(ctx, token)
	if err != nil {
		return err
	}
	s.LastActivityAt = lastActivity
	s.ExpiresAt = expiresAt
	return r.save(ctx, s)
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, r.prefix+token).Err(); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}
