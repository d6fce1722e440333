package pricing

import (
	"fmt"

	"github.com/kashpo/storefront/internal/domain/shared"
)

// BelowMinimumError reports a bulk quantity under the minimum order quantity.
// It matches shared.ErrBelowMinimumOrder with errors.Is; callers that want to
// clamp read Minimum with errors.As.
type BelowMinimumError struct {
	ProductID string
	Requested int64
	Minimum   int64
}

// Error implements the error interface
func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("quantity %d of %s is below the minimum order quantity %d", e.Requested, e.ProductID, e.Minimum)
}

// Unwrap exposes the domain error for errors.Is / errors.As
func (e *BelowMinimumError) Unwrap() error {
	return shared.ErrBelowMinimumOrder
}

func invalidQuantity(productID string, quantity int64) error {
	return shared.ErrInvalidQuantity.WithMessage(
		fmt.Sprintf("quantity for %s must be positive, got %d", productID, quantity))
}
