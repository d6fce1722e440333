package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kashpo/storefront/internal/domain/catalog"
	"github.com/kashpo/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// CatalogChecker validates a catalog beyond per-product rules (e.g. that every product is priceable)
type CatalogChecker interface {
	CheckCatalog(products []catalog.Product) error
}

// CatalogLoader builds the catalog repository at startup.
// The catalog document lives in the key-value store under a single key; when the
// key is absent the built-in seed is written there and used.
type CatalogLoader struct {
	store   shared.KeyValueStore
	key     string
	seed    func() []catalog.Product
	checker CatalogChecker
	logger  *zap.Logger
}

// CatalogLoaderOption configures a CatalogLoader
type CatalogLoaderOption func(*CatalogLoader)

// WithSeed overrides the built-in seed catalog
func WithSeed(seed func() []catalog.Product) CatalogLoaderOption {
	return func(l *CatalogLoader) {
		l.seed = seed
	}
}

// WithChecker adds a catalog-wide check run after product validation
func WithChecker(checker CatalogChecker) CatalogLoaderOption {
	return func(l *CatalogLoader) {
		l.checker = checker
	}
}

// WithLoaderLogger sets the logger
func WithLoaderLogger(logger *zap.Logger) CatalogLoaderOption {
	return func(l *CatalogLoader) {
		l.logger = logger
	}
}

// NewCatalogLoader creates a loader reading key from store
func NewCatalogLoader(store shared.KeyValueStore, key string, opts ...CatalogLoaderOption) *CatalogLoader {
	l := &CatalogLoader{
		store:  store,
		key:    key,
		seed:   SeedCatalog,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads, validates and returns the catalog repository.
// A malformed stored document or an invalid catalog is an error: startup must halt
// rather than serve a partial catalog.
func (l *CatalogLoader) Load(ctx context.Context) (*CatalogRepository, error) {
	products, source, missing, err := l.read(ctx)
	if err != nil {
		return nil, err
	}

	repo, err := NewCatalogRepository(products)
	if err != nil {
		return nil, fmt.Errorf("invalid %s catalog: %w", source, err)
	}
	if l.checker != nil {
		if err := l.checker.CheckCatalog(repo.Snapshot()); err != nil {
			return nil, fmt.Errorf("invalid %s catalog: %w", source, err)
		}
	}

	if missing {
		if err := l.store.Set(ctx, l.key, mustMarshal(products)); err != nil {
			l.logger.Warn("failed to store seed catalog", zap.String("key", l.key), zap.Error(err))
		}
	}

	l.logger.Info("catalog loaded",
		zap.String("source", source),
		zap.Int("products", repo.Len()),
	)
	return repo, nil
}

// read returns the catalog and its source; missing reports that the store
// holds no document, so the seed should be written once it validates
func (l *CatalogLoader) read(ctx context.Context) (products []catalog.Product, source string, missing bool, err error) {
	raw, err := l.store.Get(ctx, l.key)
	switch {
	case errors.Is(err, shared.ErrKeyNotFound):
		return l.seed(), "seed", true, nil
	case err != nil:
		l.logger.Warn("catalog store unavailable, using seed catalog", zap.String("key", l.key), zap.Error(err))
		return l.seed(), "seed", false, nil
	}

	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, "", false, fmt.Errorf("failed to decode catalog at %q: %w", l.key, err)
	}
	return products, "stored", false, nil
}

func mustMarshal(products []catalog.Product) string {
	data, err := json.Marshal(products)
	if err != nil {
		// Product holds only strings, ints, maps and slices
		panic(err)
	}
	return string(data)
}
