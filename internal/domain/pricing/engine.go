// Package pricing computes displayed and submitted prices from product classification.
// The display layer and the order composer both quote through the same Engine
// so the quoted price and the submitted price cannot diverge.
package pricing

import (
	"fmt"

	"github.com/kashpo/storefront/internal/domain/catalog"
	"github.com/kashpo/storefront/internal/domain/shared"
	"github.com/kashpo/storefront/internal/domain/shared/strategy"
	"github.com/kashpo/storefront/internal/domain/shared/valueobject"
)

// Weight and piece units used in quotes
const (
	UnitPiece    = "pcs"
	UnitKilogram = "kg"
)

// BulkRule is the flat per-unit rate and minimum order quantity of bulk material
type BulkRule struct {
	UnitPrice       int64  `json:"unit_price"`
	MinimumQuantity int64  `json:"minimum_quantity"`
	Unit            string `json:"unit"`
}

// Rules are the price rules keyed by product classification
type Rules struct {
	Currency        valueobject.Currency   `json:"currency"`
	ContainerPrices map[catalog.Size]int64 `json:"container_prices"`
	Fiber           BulkRule               `json:"fiber"`
}

// DefaultRules returns the storefront's current price list in UZS
func DefaultRules() Rules {
	return Rules{
		Currency: valueobject.UZS,
		ContainerPrices: map[catalog.Size]int64{
			catalog.Size5L:  145000,
			catalog.Size10L: 187000,
			catalog.Size16L: 245000,
		},
		Fiber: BulkRule{
			UnitPrice:       36000,
			MinimumQuantity: 5,
			Unit:            UnitKilogram,
		},
	}
}

// Validate checks the rules are usable
func (r Rules) Validate() error {
	if r.Currency == "" {
		return shared.ErrInvalidCatalog.WithMessage("price rules: currency is required")
	}
	for size, price := range r.ContainerPrices {
		if !size.IsValid() {
			return shared.ErrInvalidCatalog.WithMessage(fmt.Sprintf("price rules: unknown size %q", size))
		}
		if price <= 0 {
			return shared.ErrInvalidCatalog.WithMessage(fmt.Sprintf("price rules: price for %s must be positive", size))
		}
	}
	if r.Fiber.UnitPrice <= 0 {
		return shared.ErrInvalidCatalog.WithMessage("price rules: fiber unit price must be positive")
	}
	if r.Fiber.MinimumQuantity <= 0 {
		return shared.ErrInvalidCatalog.WithMessage("price rules: fiber minimum quantity must be positive")
	}
	return nil
}

// Quote is the priced result for a product and quantity
type Quote struct {
	ProductID         string               `json:"product_id"`
	BaseUnitPrice     valueobject.Money    `json:"base_unit_price"`
	UnitPrice         valueobject.Money    `json:"unit_price"`
	Quantity          int64                `json:"quantity"`
	EffectiveQuantity int64                `json:"effective_quantity"`
	Total             valueobject.Money    `json:"total"`
	Currency          valueobject.Currency `json:"currency"`
	DiscountPercent   int                  `json:"discount_percent,omitempty"`
	MinimumQuantity   int64                `json:"minimum_quantity,omitempty"`
	Unit              string               `json:"unit"`
	Strategy          string               `json:"strategy"`
	Basis             strategy.Basis       `json:"basis"`
	AppliedRules      []string             `json:"applied_rules"`
}

// Engine quotes prices. It is immutable after construction and safe for concurrent use.
type Engine struct {
	rules Rules
	unit  strategy.PricingStrategy
	bulk  strategy.PricingStrategy
}

// NewEngine creates a price engine for the given rules
func NewEngine(rules Rules) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	prices := make(map[catalog.Size]int64, len(rules.ContainerPrices))
	for k, v := range rules.ContainerPrices {
		prices[k] = v
	}
	rules.ContainerPrices = prices
	if rules.Fiber.Unit == "" {
		rules.Fiber.Unit = UnitKilogram
	}

	return &Engine{
		rules: rules,
		unit:  NewUnitPricingStrategy(),
		bulk:  NewBulkPricingStrategy(),
	}, nil
}

// Currency returns the deployment currency
func (e *Engine) Currency() valueobject.Currency {
	return e.rules.Currency
}

// Quote prices quantity units of product.
//
// Errors:
//   - shared.ErrInvalidQuantity when quantity <= 0
//   - *BelowMinimumError (errors.Is shared.ErrBelowMinimumOrder) for bulk
//     material under the minimum order quantity
//   - shared.ErrInvalidCatalog when no rule covers the product
func (e *Engine) Quote(product *catalog.Product, quantity int64) (Quote, error) {
	if quantity <= 0 {
		return Quote{}, invalidQuantity(product.ID, quantity)
	}

	pricingCtx, unit, err := e.pricingContext(product, quantity)
	if err != nil {
		return Quote{}, err
	}

	s := e.strategyFor(product)
	result, err := s.CalculatePrice(pricingCtx)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		ProductID:         product.ID,
		BaseUnitPrice:     pricingCtx.BasePrice,
		UnitPrice:         result.UnitPrice,
		Quantity:          quantity,
		EffectiveQuantity: result.EffectiveQuantity,
		Total:             result.TotalPrice,
		Currency:          e.rules.Currency,
		DiscountPercent:   result.DiscountPercent,
		MinimumQuantity:   pricingCtx.MinimumQuantity,
		Unit:              unit,
		Strategy:          s.Name(),
		Basis:             s.Basis(),
		AppliedRules:      result.AppliedRules,
	}, nil
}

// MinimumQuantity returns the smallest quantity Quote accepts for product
func (e *Engine) MinimumQuantity(product *catalog.Product) int64 {
	if e.strategyFor(product).EnforcesMinimum() {
		return e.rules.Fiber.MinimumQuantity
	}
	return 1
}

// ClampToMinimum raises quantity to the product's minimum order quantity.
// Quote never clamps; callers that prefer clamping over rejection call this first.
func (e *Engine) ClampToMinimum(product *catalog.Product, quantity int64) int64 {
	if m := e.MinimumQuantity(product); quantity < m {
		return m
	}
	return quantity
}

// CheckCatalog verifies every product is priceable.
// A product may carry a discount only when its strategy supports one, so bulk
// material with a minimum order is never discounted.
func (e *Engine) CheckCatalog(products []catalog.Product) error {
	for i := range products {
		p := &products[i]
		s := e.strategyFor(p)
		if p.DiscountPercent != 0 && !s.SupportsDiscount() {
			return shared.ErrInvalidCatalog.WithMessage(
				fmt.Sprintf("product %s: %s pricing cannot carry a discount", p.ID, s.Name()))
		}
		if !s.Basis().IsValid() {
			return shared.ErrInvalidCatalog.WithMessage(
				fmt.Sprintf("product %s: %s pricing has unknown basis %q", p.ID, s.Name(), s.Basis()))
		}
		if s.Basis() != strategy.BasisPiece {
			continue
		}
		if _, ok := e.rules.ContainerPrices[p.Size]; !ok {
			return shared.ErrInvalidCatalog.WithMessage(
				fmt.Sprintf("product %s: no price for size %q", p.ID, p.Size))
		}
	}
	return nil
}

func (e *Engine) strategyFor(product *catalog.Product) strategy.PricingStrategy {
	if product.IsBulk() {
		return e.bulk
	}
	return e.unit
}

func (e *Engine) pricingContext(product *catalog.Product, quantity int64) (strategy.PricingContext, string, error) {
	switch product.Category {
	case catalog.CategoryFiber:
		base, err := valueobject.NewMoneyFromInt(e.rules.Fiber.UnitPrice, e.rules.Currency)
		if err != nil {
			return strategy.PricingContext{}, "", err
		}
		return strategy.PricingContext{
			ProductID:       product.ID,
			Quantity:        quantity,
			BasePrice:       base,
			MinimumQuantity: e.rules.Fiber.MinimumQuantity,
		}, e.rules.Fiber.Unit, nil
	case catalog.CategoryContainer:
		price, ok := e.rules.ContainerPrices[product.Size]
		if !ok {
			return strategy.PricingContext{}, "", shared.ErrInvalidCatalog.WithMessage(
				fmt.Sprintf("product %s: no price for size %q", product.ID, product.Size))
		}
		base, err := valueobject.NewMoneyFromInt(price, e.rules.Currency)
		if err != nil {
			return strategy.PricingContext{}, "", err
		}
		return strategy.PricingContext{
			ProductID:       product.ID,
			Quantity:        quantity,
			BasePrice:       base,
			DiscountPercent: product.DiscountPercent,
		}, UnitPiece, nil
	default:
		return strategy.PricingContext{}, "", shared.ErrInvalidCatalog.WithMessage(
			fmt.Sprintf("product %s: unknown category %q", product.ID, product.Category))
	}
}
