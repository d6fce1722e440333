package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/kashpo/storefront/internal/domain/shared"
	"github.com/kashpo/storefront/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisStore(t *testing.T) (*RedisKVStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisKVStoreWithClient(client, "test:")
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

// kvStoreContract runs the behaviour every KeyValueStore must share
func kvStoreContract(t *testing.T, store shared.KeyValueStore) {
	ctx := context.Background()

	t.Run("get missing key returns ErrKeyNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.True(t, errors.Is(err, shared.ErrKeyNotFound))
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "cart:abc", `{"items":[]}`))
		v, err := store.Get(ctx, "cart:abc")
		require.NoError(t, err)
		assert.Equal(t, `{"items":[]}`, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", "1"))
		require.NoError(t, store.Set(ctx, "k", "2"))
		v, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "2", v)
	})

	t.Run("delete removes key and tolerates missing keys", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", "x"))
		require.NoError(t, store.Delete(ctx, "gone"))
		_, err := store.Get(ctx, "gone")
		assert.True(t, errors.Is(err, shared.ErrKeyNotFound))
		assert.NoError(t, store.Delete(ctx, "never-existed"))
	})
}

func TestInMemoryKVStore(t *testing.T) {
	store := NewInMemoryKVStore()
	kvStoreContract(t, store)

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
	})

	t.Run("concurrent access", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("concurrent:%d", i)
				_ = store.Set(ctx, key, "v")
				_, _ = store.Get(ctx, key)
			}(i)
		}
		wg.Wait()
		assert.GreaterOrEqual(t, store.Size(), 50)
	})

	assert.NoError(t, store.Close())
}

func TestRedisKVStore(t *testing.T) {
	store, mr := newMiniredisStore(t)
	kvStoreContract(t, store)

	t.Run("keys are prefixed", func(t *testing.T) {
		require.NoError(t, store.Set(context.Background(), "catalog:products", "[]"))
		v, err := mr.Get("test:catalog:products")
		require.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("server errors are wrapped", func(t *testing.T) {
		mr.SetError("boom")
		defer mr.SetError("")

		_, err := store.Get(context.Background(), "k")
		require.Error(t, err)
		assert.False(t, errors.Is(err, shared.ErrKeyNotFound))
		assert.Contains(t, err.Error(), "failed to get")
	})
}

func TestNewRedisKVStore(t *testing.T) {
	t.Run("connects", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store, err := NewRedisKVStore(RedisConfig{Addr: mr.Addr()})
		require.NoError(t, err)
		defer store.Close()
		assert.Equal(t, defaultKeyPrefix, store.keyPrefix)
	})

	t.Run("fails when unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := NewRedisKVStore(RedisConfig{Addr: addr})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to Redis")
	})
}

func TestKVStoreFactory_CreateStore(t *testing.T) {
	t.Run("redis disabled uses in-memory", func(t *testing.T) {
		f := NewKVStoreFactory(config.RedisConfig{Enabled: false})
		store, err := f.CreateStore()
		require.NoError(t, err)
		_, ok := store.(*InMemoryKVStore)
		assert.True(t, ok)
	})

	t.Run("redis reachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		f := NewKVStoreFactory(config.RedisConfig{Enabled: true, Host: mr.Host(), Port: mustPort(t, mr)})
		store, err := f.CreateStore()
		require.NoError(t, err)
		defer store.Close()
		_, ok := store.(*RedisKVStore)
		assert.True(t, ok)
	})

	t.Run("redis unreachable falls back", func(t *testing.T) {
		mr := miniredis.RunT(t)
		port := mustPort(t, mr)
		mr.Close()

		f := NewKVStoreFactory(config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: port})
		store, err := f.CreateStore()
		require.NoError(t, err)
		_, ok := store.(*InMemoryKVStore)
		assert.True(t, ok)
	})

	t.Run("redis unreachable without fallback fails", func(t *testing.T) {
		mr := miniredis.RunT(t)
		port := mustPort(t, mr)
		mr.Close()

		f := NewKVStoreFactory(config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: port}, WithInMemoryFallback(false))
		_, err := f.CreateStore()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Redis required")
	})
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	var port int
	_, err := fmt.Sscanf(mr.Port(), "%d", &port)
	require.NoError(t, err)
	return port
}
