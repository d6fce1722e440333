package cache

import (
	"context"
	"sync"

	"github.com/kashpo/storefront/internal/domain/shared"
)

// InMemoryKVStore implements KeyValueStore using an in-memory map
// This is suitable for single-instance deployments and testing
type InMemoryKVStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewInMemoryKVStore creates a new in-memory key-value store
func NewInMemoryKVStore() *InMemoryKVStore {
	return &InMemoryKVStore{
		entries: make(map[string]string),
	}
}

// Get returns the value stored under key
func (s *InMemoryKVStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	if !ok {
		return "", shared.ErrKeyNotFound
	}
	return v, nil
}

// Set stores value under key
func (s *InMemoryKVStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return nil
}

// Delete removes key
func (s *InMemoryKVStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Close is a no-op for the in-memory store
func (s *InMemoryKVStore) Close() error {
	return nil
}

// Size returns the number of entries in the store (for testing/monitoring)
func (s *InMemoryKVStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure InMemoryKVStore implements KeyValueStore
var _ shared.KeyValueStore = (*InMemoryKVStore)(nil)
