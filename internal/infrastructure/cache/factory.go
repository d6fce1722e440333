package cache

import (
	"fmt"

	"github.com/kashpo/storefront/internal/domain/shared"
	"github.com/kashpo/storefront/internal/infrastructure/config"
	"go.uber.org/zap"
)

// KVStoreFactory creates key-value stores based on configuration
type KVStoreFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// KVStoreFactoryOption is a functional option for configuring the factory
type KVStoreFactoryOption func(*KVStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) KVStoreFactoryOption {
	return func(f *KVStoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to in-memory store when Redis is unavailable
// Default is true (allow fallback)
func WithInMemoryFallback(allow bool) KVStoreFactoryOption {
	return func(f *KVStoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewKVStoreFactory creates a new factory
func NewKVStoreFactory(cfg config.RedisConfig, opts ...KVStoreFactoryOption) *KVStoreFactory {
	f := &KVStoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: !cfg.RequireRedis,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisStore creates a Redis-based key-value store
func (f *KVStoreFactory) CreateRedisStore() (shared.KeyValueStore, error) {
	store, err := NewRedisKVStore(RedisConfig{
		Addr:     f.redisConfig.Addr(),
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis key-value store: %w", err)
	}
	return store, nil
}

// CreateInMemoryStore creates an in-memory key-value store
// WARNING: In-memory stores do not share carts across process instances
// and lose them on restart
func (f *KVStoreFactory) CreateInMemoryStore() shared.KeyValueStore {
	return NewInMemoryKVStore()
}

// CreateStore creates a key-value store.
// When Redis is disabled the in-memory store is used. Otherwise Redis is tried
// first, falling back to in-memory if allowed.
func (f *KVStoreFactory) CreateStore() (shared.KeyValueStore, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-memory key-value store")
		return f.CreateInMemoryStore(), nil
	}

	store, err := f.CreateRedisStore()
	if err == nil {
		f.logger.Info("using Redis key-value store", zap.String("addr", f.redisConfig.Addr()))
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for key-value store but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory key-value store. "+
		"Carts will not be shared across instances.",
		zap.Error(err),
	)
	return f.CreateInMemoryStore(), nil
}
