package persistence

import (
	"fmt"

	"github.com/kashpo/storefront/internal/domain/catalog"
	"github.com/kashpo/storefront/internal/domain/shared"
)

// CatalogRepository implements catalog.Repository over an immutable in-memory product list.
// The list is validated and copied at construction and never mutated afterwards,
// so concurrent readers need no locking. Every read hands out a deep copy.
type CatalogRepository struct {
	products []catalog.Product
	byID     map[string]int
}

// NewCatalogRepository validates products and builds the repository.
// A malformed catalog returns an error wrapping shared.ErrInvalidCatalog.
func NewCatalogRepository(products []catalog.Product) (*CatalogRepository, error) {
	r := &CatalogRepository{
		products: make([]catalog.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}

	for i := range products {
		p := &products[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, shared.ErrInvalidCatalog.WithMessage(fmt.Sprintf("duplicate product id %q", p.ID))
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p.Clone())
	}

	return r, nil
}

// GetProduct returns a copy of the product with the given id
func (r *CatalogRepository) GetProduct(id string) (*catalog.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	p := r.products[i].Clone()
	return &p, nil
}

// ListProducts returns copies of the matching products in declaration order
func (r *CatalogRepository) ListProducts(filter catalog.ProductFilter) []catalog.Product {
	out := make([]catalog.Product, 0, len(r.products))
	for i := range r.products {
		if filter.Matches(&r.products[i]) {
			out = append(out, r.products[i].Clone())
		}
	}
	return out
}

// GetVariant returns a copy of the product's variant
func (r *CatalogRepository) GetVariant(productID, variantID string) (*catalog.ColorVariant, error) {
	i, ok := r.byID[productID]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	v, ok := r.products[i].FindVariant(variantID)
	if !ok {
		return nil, catalog.ErrVariantNotFound
	}
	c := v.Clone()
	return &c, nil
}

// Len returns the number of products
func (r *CatalogRepository) Len() int {
	return len(r.products)
}

// Snapshot returns a deep copy of every product in declaration order
func (r *CatalogRepository) Snapshot() []catalog.Product {
	return r.ListProducts(catalog.ProductFilter{})
}

// Ensure CatalogRepository implements catalog.Repository
var _ catalog.Repository = (*CatalogRepository)(nil)
