package pricing

import (
	"github.com/kashpo/storefront/internal/domain/shared/strategy"
)

// UnitPricingStrategy prices piece goods: total = unit price * quantity.
// A promotional discount, when present, reduces the unit price once before multiplication.
type UnitPricingStrategy struct {
	strategy.BaseStrategy
}

// NewUnitPricingStrategy creates a new unit pricing strategy
func NewUnitPricingStrategy() *UnitPricingStrategy {
	return &UnitPricingStrategy{
		BaseStrategy: strategy.NewBaseStrategy("unit", strategy.BasisPiece),
	}
}

// CalculatePrice calculates the price for piece goods
func (s *UnitPricingStrategy) CalculatePrice(pricingCtx strategy.PricingContext) (strategy.PricingResult, error) {
	if pricingCtx.Quantity <= 0 {
		return strategy.PricingResult{}, invalidQuantity(pricingCtx.ProductID, pricingCtx.Quantity)
	}

	unitPrice := pricingCtx.BasePrice
	appliedRules := []string{"unit_price"}

	if pricingCtx.DiscountPercent > 0 {
		discounted, err := unitPrice.ApplyDiscount(pricingCtx.DiscountPercent)
		if err != nil {
			return strategy.PricingResult{}, err
		}
		unitPrice = discounted
		appliedRules = append(appliedRules, "discount")
	}

	return strategy.PricingResult{
		UnitPrice:         unitPrice,
		TotalPrice:        unitPrice.MultiplyByInt(pricingCtx.Quantity),
		EffectiveQuantity: pricingCtx.Quantity,
		DiscountPercent:   pricingCtx.DiscountPercent,
		AppliedRules:      appliedRules,
	}, nil
}

// SupportsDiscount returns true as piece goods may carry a promotion
func (s *UnitPricingStrategy) SupportsDiscount() bool {
	return true
}

// EnforcesMinimum returns false as piece goods can be bought one at a time
func (s *UnitPricingStrategy) EnforcesMinimum() bool {
	return false
}
