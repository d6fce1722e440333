package catalog

import "github.com/kashpo/storefront/internal/domain/shared"

var (
	// ErrProductNotFound is returned when no product has the requested id
	ErrProductNotFound = shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	// ErrVariantNotFound is returned when the product has no variant with the requested id
	ErrVariantNotFound = shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found")
)

// Repository is the read-only source of truth for what can be sold.
// It is built once at startup; implementations must be safe for concurrent
// readers without locking and must hand out copies, never internal state.
type Repository interface {
	// GetProduct returns the product with the given id or ErrProductNotFound
	GetProduct(id string) (*Product, error)

	// ListProducts returns products matching filter in declaration order
	ListProducts(filter ProductFilter) []Product

	// GetVariant returns a product's variant or ErrProductNotFound / ErrVariantNotFound
	GetVariant(productID, variantID string) (*ColorVariant, error)
}
