package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisNamespace = "taskboard:"

// RedisSlot stores keys in Redis under the taskboard: namespace, without expiry.
type RedisSlot struct {
	client *redis.Client
}

// OpenRedisSlot connects to the Redis server at url and verifies it responds.
func OpenRedisSlot(ctx context.Context, url string) (*RedisSlot, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisSlot(client), nil
}

// NewRedisSlot wraps an existing client.
func NewRedisSlot(client *redis.Client) *RedisSlot {
	return &RedisSlot{client: client}
}

func (s *RedisSlot) namespaceKey(key string) string {
	return redisNamespace + key
}

// Get reads the value for key.
func (s *RedisSlot) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	val, err := s.client.Get(ctx, s.namespaceKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores the value for key.
func (s *RedisSlot) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return s.client.Set(ctx, s.namespaceKey(key), value, 0).Err()
}

// Delete removes key. Used to reset test namespaces.
func (s *RedisSlot) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return s.client.Del(ctx, s.namespaceKey(key)).Err()
}

// Close closes the client.
func (s *RedisSlot) Close() error {
	return s.client.Close()
}
