package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of redis.Cmdable used by the stores.
type RedisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisBlocklist stores revoked token ids with a TTL.
type RedisBlocklist struct {
	client RedisClient
	prefix string
}

func NewRedisBlocklist(client RedisClient, prefix string) *RedisBlocklist {
	if client == nil {
		return nil
	}
	if prefix == "" {
		prefix = DefaultBlocklistPrefix
	}
	return &RedisBlocklist{client: client, prefix: prefix}
}

func (b *RedisBlocklist) Block(ctx context.Context, jti string, ttl time.Duration) error {
	if b == nil || jti == "" {
		return fmt.Errorf("blocklist not configured")
	}
	return b.client.Set(ctx, b.prefix+jti, "1", ttl).Err()
}

func (b *RedisBlocklist) IsBlocked(ctx context.Context, jti string) (bool, error) {
	if b == nil || jti == "" {
		return false, nil
	}
	n, err := b.client.Exists(ctx, b.prefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RedisVersionStore keeps one version key per subject.
type RedisVersionStore struct {
	client RedisClient
	prefix string
}

func NewRedisVersionStore(client RedisClient, prefix string) *RedisVersionStore {
	if client == nil {
		return nil
	}
	if prefix == "" {
		prefix = DefaultVersionPrefix
	}
	return &RedisVersionStore{client: client, prefix: prefix}
}

func (s *RedisVersionStore) Incr(ctx context.Context, subject string) (int64, error) {
	return s.client.Incr(ctx, s.prefix+subject).Result()
}

// Get returns 0 for a subject that never had a token issued.
func (s *RedisVersionStore) Get(ctx context.Context, subject string) (int64, error) {
	v, err := s.client.Get(ctx, s.prefix+subject).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}
