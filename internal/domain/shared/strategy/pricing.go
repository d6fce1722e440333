package strategy

import (
	"github.com/kashpo/storefront/internal/domain/shared/valueobject"
)

// PricingContext provides context for pricing calculation
type PricingContext struct {
	ProductID       string
	Quantity        int64
	BasePrice       valueobject.Money
	DiscountPercent int
	MinimumQuantity int64
}

// PricingResult contains the result of pricing calculation
type PricingResult struct {
	UnitPrice         valueobject.Money
	TotalPrice        valueobject.Money
	EffectiveQuantity int64
	DiscountPercent   int
	AppliedRules      []string
}

// PricingStrategy defines the interface for pricing calculation.
// Implementations are pure: no I/O, no clock, no randomness.
type PricingStrategy interface {
	Strategy
	// CalculatePrice calculates the final price for a given pricing context
	CalculatePrice(pricingCtx PricingContext) (PricingResult, error)
	// SupportsDiscount returns true if the strategy applies percentage discounts
	SupportsDiscount() bool
	// EnforcesMinimum returns true if the strategy rejects quantities below a minimum
	EnforcesMinimum() bool
}
