package shared

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key holds no value
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the external key-value collaborator.
// Values are opaque strings; callers JSON-encode their own payloads.
// Implementations make no promise about the storage technology behind them.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the store
	Close() error
}
