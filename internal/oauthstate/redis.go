package oauthstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v7"
)

// DefaultKeyPrefix namespaces nonce keys.
const DefaultKeyPrefix = "ebay-relay:oauth-state:"

// RedisStore keeps nonces in Redis so several relay instances can share a
// consent flow. Expiry is delegated to Redis key TTLs.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps client. An empty prefix uses DefaultKeyPrefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// DialRedis connects to addr and verifies the connection.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.WithContext(ctx).Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}

// Put stores nonce with a TTL.
func (s *RedisStore) Put(ctx context.Context, nonce, userID string, ttl time.Duration) error {
	if err := s.client.WithContext(ctx).Set(s.prefix+nonce, userID, ttl).Err(); err != nil {
		return fmt.Errorf("setting state key: %w", err)
	}
	return nil
}

// Take reads and deletes nonce in one MULTI/EXEC.
func (s *RedisStore) Take(ctx context.Context, nonce string) (string, bool, error) {
	key := s.prefix + nonce

	var get *redis.StringCmd
	_, err := s.client.WithContext(ctx).TxPipelined(func(pipe redis.Pipeliner) error {
		get = pipe.Get(key)
		pipe.Del(key)
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("taking state key: %w", err)
	}

	userID, err := get.Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading state key: %w", err)
	}
	return userID, true, nil
}
