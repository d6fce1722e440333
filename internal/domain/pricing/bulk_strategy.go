package pricing

import (
	"github.com/kashpo/storefront/internal/domain/shared/strategy"
)

// BulkPricingStrategy prices material sold by weight at a flat per-unit rate.
// Quantities below the minimum order quantity are rejected with
// BelowMinimumError; the strategy never substitutes the minimum itself.
type BulkPricingStrategy struct {
	strategy.BaseStrategy
}

// NewBulkPricingStrategy creates a new bulk pricing strategy
func NewBulkPricingStrategy() *BulkPricingStrategy {
	return &BulkPricingStrategy{
		BaseStrategy: strategy.NewBaseStrategy("bulk", strategy.BasisWeight),
	}
}

// CalculatePrice calculates the price for bulk material
func (s *BulkPricingStrategy) CalculatePrice(pricingCtx strategy.PricingContext) (strategy.PricingResult, error) {
	if pricingCtx.Quantity <= 0 {
		return strategy.PricingResult{}, invalidQuantity(pricingCtx.ProductID, pricingCtx.Quantity)
	}
	if pricingCtx.Quantity < pricingCtx.MinimumQuantity {
		return strategy.PricingResult{}, &BelowMinimumError{
			ProductID: pricingCtx.ProductID,
			Requested: pricingCtx.Quantity,
			Minimum:   pricingCtx.MinimumQuantity,
		}
	}

	return strategy.PricingResult{
		UnitPrice:         pricingCtx.BasePrice,
		TotalPrice:        pricingCtx.BasePrice.MultiplyByInt(pricingCtx.Quantity),
		EffectiveQuantity: pricingCtx.Quantity,
		AppliedRules:      []string{"bulk_rate", "minimum_order"},
	}, nil
}

// SupportsDiscount returns false: discounts and bulk minimums are mutually exclusive
func (s *BulkPricingStrategy) SupportsDiscount() bool {
	return false
}

// EnforcesMinimum returns true as bulk material has a minimum order quantity
func (s *BulkPricingStrategy) EnforcesMinimum() bool {
	return true
}
