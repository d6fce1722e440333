package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kashpo/storefront/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "storefront:"

// RedisKVStore implements KeyValueStore using Redis
// This is suitable for deployments where several instances share carts and catalog
type RedisKVStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisKVStore connects to Redis and verifies the connection
func NewRedisKVStore(cfg RedisConfig) (*RedisKVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisKVStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}, nil
}

// NewRedisKVStoreWithClient creates a store with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisKVStoreWithClient(client *redis.Client, keyPrefix string) *RedisKVStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisKVStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the value stored under key
func (s *RedisKVStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", shared.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %q: %w", key, err)
	}
	return v, nil
}

// Set stores value under key without expiration
func (s *RedisKVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes key
func (s *RedisKVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisKVStore) Close() error {
	return s.client.Close()
}

// Ping reports whether Redis is reachable (for health checks)
func (s *RedisKVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Ensure RedisKVStore implements KeyValueStore
var _ shared.KeyValueStore = (*RedisKVStore)(nil)
