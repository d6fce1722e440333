package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/kashpo/storefront/internal/domain/catalog"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/pricing"
	"github.com/kashpo/storefront/internal/domain/shared"
	"github.com/kashpo/storefront/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedRepository(t *testing.T) *CatalogRepository {
	t.Helper()
	repo, err := NewCatalogRepository(SeedCatalog())
	require.NoError(t, err)
	return repo
}

func TestSeedCatalog(t *testing.T) {
	products := SeedCatalog()

	t.Run("seed is valid and priceable", func(t *testing.T) {
		_, err := NewCatalogRepository(products)
		require.NoError(t, err)

		engine, err := pricing.NewEngine(pricing.DefaultRules())
		require.NoError(t, err)
		require.NoError(t, engine.CheckCatalog(products))
	})

	t.Run("flagship defaults to gray", func(t *testing.T) {
		repo := newSeedRepository(t)
		p, err := repo.GetProduct("container-10L-classic")
		require.NoError(t, err)
		assert.Equal(t, "gray", p.DefaultVariantID())
		assert.Equal(t, catalog.Size10L, p.Size)
		assert.Equal(t, "Кашпо классическое 10 л", p.DisplayName(i18n.LocaleRU))
	})

	t.Run("every container size and style exists", func(t *testing.T) {
		repo := newSeedRepository(t)
		for _, size := range catalog.AllSizes() {
			for _, style := range []catalog.Style{catalog.StyleClassic, catalog.StyleRound} {
				_, err := repo.GetProduct("container-" + string(size) + "-" + string(style))
				assert.NoError(t, err, "%s %s", size, style)
			}
		}
	})

	t.Run("includes a fiber product without variants", func(t *testing.T) {
		repo := newSeedRepository(t)
		p, err := repo.GetProduct("rattan-fiber-mix")
		require.NoError(t, err)
		assert.True(t, p.IsBulk())
		assert.False(t, p.HasVariants())
		assert.NotEmpty(t, p.Image)
	})

	t.Run("seed returns fresh copies", func(t *testing.T) {
		a := SeedCatalog()
		a[0].Variants[0].Images[0] = "mutated"
		b := SeedCatalog()
		assert.NotEqual(t, "mutated", b[0].Variants[0].Images[0])
	})
}

func TestNewCatalogRepository(t *testing.T) {
	t.Run("rejects duplicate ids", func(t *testing.T) {
		products := SeedCatalog()
		products = append(products, products[0])
		_, err := NewCatalogRepository(products)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidCatalog))
		assert.Contains(t, err.Error(), "duplicate product id")
	})

	t.Run("rejects invalid product", func(t *testing.T) {
		products := SeedCatalog()
		products[1].Variants[0].Images = nil
		_, err := NewCatalogRepository(products)
		assert.True(t, errors.Is(err, shared.ErrInvalidCatalog))
	})

	t.Run("does not alias input", func(t *testing.T) {
		products := SeedCatalog()
		repo, err := NewCatalogRepository(products)
		require.NoError(t, err)

		products[0].Name[i18n.LocaleRU] = "changed"
		p, err := repo.GetProduct(products[0].ID)
		require.NoError(t, err)
		assert.NotEqual(t, "changed", p.Name[i18n.LocaleRU])
	})
}

func TestCatalogRepository_GetProduct(t *testing.T) {
	repo := newSeedRepository(t)

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetProduct("container-20L-classic")
		assert.True(t, errors.Is(err, catalog.ErrProductNotFound))
	})

	t.Run("returned product is a copy", func(t *testing.T) {
		p, err := repo.GetProduct("container-10L-classic")
		require.NoError(t, err)
		p.Variants[0].Images[0] = "mutated"
		p.Name[i18n.LocaleRU] = "mutated"

		again, err := repo.GetProduct("container-10L-classic")
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", again.Variants[0].Images[0])
		assert.NotEqual(t, "mutated", again.Name[i18n.LocaleRU])
	})
}

func TestCatalogRepository_ListProducts(t *testing.T) {
	repo := newSeedRepository(t)

	t.Run("no filter keeps declaration order", func(t *testing.T) {
		all := repo.ListProducts(catalog.ProductFilter{})
		seed := SeedCatalog()
		require.Len(t, all, len(seed))
		for i := range seed {
			assert.Equal(t, seed[i].ID, all[i].ID)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		fibers := repo.ListProducts(catalog.ProductFilter{Category: catalog.CategoryFiber})
		require.Len(t, fibers, 2)
		assert.Equal(t, "rattan-fiber", fibers[0].ID)
		assert.Equal(t, "rattan-fiber-mix", fibers[1].ID)
	})

	t.Run("popular filter", func(t *testing.T) {
		popular := repo.ListProducts(catalog.ProductFilter{PopularOnly: true})
		ids := make([]string, 0, len(popular))
		for _, p := range popular {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"container-10L-classic", "container-10L-round", "rattan-fiber"}, ids)
	})

	t.Run("query filter matches both locales", func(t *testing.T) {
		ru := repo.ListProducts(catalog.ProductFilter{Query: "РОТАНГ"})
		uz := repo.ListProducts(catalog.ProductFilter{Query: "rotang"})
		assert.NotEmpty(t, ru)
		assert.NotEmpty(t, uz)
	})

	t.Run("results are stable across calls", func(t *testing.T) {
		assert.Equal(t, repo.ListProducts(catalog.ProductFilter{}), repo.ListProducts(catalog.ProductFilter{}))
	})
}

func TestCatalogRepository_GetVariant(t *testing.T) {
	repo := newSeedRepository(t)

	v, err := repo.GetVariant("container-10L-classic", "white")
	require.NoError(t, err)
	assert.Equal(t, "white", v.ID)

	_, err = repo.GetVariant("container-10L-classic", "purple")
	assert.True(t, errors.Is(err, catalog.ErrVariantNotFound))
	assert.False(t, errors.Is(err, catalog.ErrProductNotFound))

	_, err = repo.GetVariant("missing", "gray")
	assert.True(t, errors.Is(err, catalog.ErrProductNotFound))
}

func TestCatalogRepository_ConcurrentReads(t *testing.T) {
	repo := newSeedRepository(t)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p, err := repo.GetProduct("container-10L-classic")
				if err == nil {
					p.Variants[0].Images[0] = "scribble"
				}
				_ = repo.ListProducts(catalog.ProductFilter{Query: "кашпо"})
			}
		}()
	}
	wg.Wait()

	p, err := repo.GetProduct("container-10L-classic")
	require.NoError(t, err)
	assert.NotEqual(t, "scribble", p.Variants[0].Images[0])
}

func TestCatalogLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds an empty store", func(t *testing.T) {
		store := cache.NewInMemoryKVStore()
		loader := NewCatalogLoader(store, "catalog:products")

		repo, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(SeedCatalog()), repo.Len())

		raw, err := store.Get(ctx, "catalog:products")
		require.NoError(t, err)
		var stored []catalog.Product
		require.NoError(t, json.Unmarshal([]byte(raw), &stored))
		assert.Len(t, stored, repo.Len())
	})

	t.Run("reads the stored catalog", func(t *testing.T) {
		store := cache.NewInMemoryKVStore()
		products := SeedCatalog()[:1]
		data, err := json.Marshal(products)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "catalog:products", string(data)))

		repo, err := NewCatalogLoader(store, "catalog:products").Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, repo.Len())
		p, err := repo.GetProduct(products[0].ID)
		require.NoError(t, err)
		assert.Equal(t, products[0].Name, p.Name)
	})

	t.Run("malformed document halts", func(t *testing.T) {
		store := cache.NewInMemoryKVStore()
		require.NoError(t, store.Set(ctx, "catalog:products", "{not json"))

		_, err := NewCatalogLoader(store, "catalog:products").Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode catalog")
	})

	t.Run("invalid stored catalog halts", func(t *testing.T) {
		store := cache.NewInMemoryKVStore()
		products := SeedCatalog()
		products[0].Name = i18n.LocalizedText{i18n.LocaleRU: "только русский"}
		data, err := json.Marshal(products)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "catalog:products", string(data)))

		_, err = NewCatalogLoader(store, "catalog:products").Load(ctx)
		assert.True(t, errors.Is(err, shared.ErrInvalidCatalog))
	})

	t.Run("checker failure halts", func(t *testing.T) {
		engine, err := pricing.NewEngine(pricing.DefaultRules())
		require.NoError(t, err)
		seed := func() []catalog.Product {
			products := SeedCatalog()
			for i := range products {
				if products[i].IsBulk() {
					products[i].DiscountPercent = 5
				}
			}
			return products
		}

		store := cache.NewInMemoryKVStore()
		_, err = NewCatalogLoader(store, "k", WithSeed(seed), WithChecker(engine)).Load(ctx)
		assert.True(t, errors.Is(err, shared.ErrInvalidCatalog))

		_, err = store.Get(ctx, "k")
		assert.True(t, errors.Is(err, shared.ErrKeyNotFound), "rejected seed must not be stored")
	})

	t.Run("invalid seed is never stored", func(t *testing.T) {
		store := cache.NewInMemoryKVStore()
		seed := func() []catalog.Product {
			products := SeedCatalog()
			products[1].ID = products[0].ID
			return products
		}

		for range 2 {
			_, err := NewCatalogLoader(store, "k", WithSeed(seed)).Load(ctx)
			assert.True(t, errors.Is(err, shared.ErrInvalidCatalog))
			assert.Contains(t, err.Error(), "invalid seed catalog")
		}
		_, err := store.Get(ctx, "k")
		assert.True(t, errors.Is(err, shared.ErrKeyNotFound))
	})

	t.Run("store failure falls back to seed", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		repo, err := NewCatalogLoader(cache.NewInMemoryKVStore(), "k").Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(SeedCatalog()), repo.Len())
	})
}
