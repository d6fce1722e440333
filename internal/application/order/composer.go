// Package order composes carts into order payloads and submits them to the
// notification channel.
package order

import (
	"errors"
	"fmt"

	"github.com/kashpo/storefront/internal/domain/catalog"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/order"
	"github.com/kashpo/storefront/internal/domain/pricing"
	"github.com/kashpo/storefront/internal/domain/shared"
	"github.com/kashpo/storefront/internal/domain/shared/valueobject"
)

// Composer turns cart selections into an order payload.
// It is pure: no I/O, no clock, no randomness. Equal inputs give equal payloads.
type Composer struct {
	repo   catalog.Repository
	engine *pricing.Engine
}

// NewComposer creates a new Composer
func NewComposer(repo catalog.Repository, engine *pricing.Engine) *Composer {
	return &Composer{
		repo:   repo,
		engine: engine,
	}
}

// Composition is a composed payload together with its priced total
type Composition struct {
	Payload *order.Payload
	Total   valueobject.Money
	Quotes  []pricing.Quote
}

// Compose builds the payload for selections in the given locale.
//
// Line items keep the order of selections. Any unknown product id fails the
// whole composition with shared.ErrUnknownProduct and no payload; pricing
// errors (invalid quantity, below minimum order) abort it the same way.
// An empty selection list composes a contact payload with no items and no total.
func (c *Composer) Compose(selections []order.CartSelection, customer order.CustomerInfo, locale i18n.Locale) (*order.Payload, error) {
	comp, err := c.ComposeWithTotal(selections, customer, locale)
	if err != nil {
		return nil, err
	}
	return comp.Payload, nil
}

// ComposeWithTotal is Compose that also returns the numeric total and per-line quotes
func (c *Composer) ComposeWithTotal(selections []order.CartSelection, customer order.CustomerInfo, locale i18n.Locale) (*Composition, error) {
	if !locale.IsValid() {
		locale = i18n.DefaultLocale
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(selections))
	quotes := make([]pricing.Quote, 0, len(selections))
	total := valueobject.Zero(c.engine.Currency())

	for i, sel := range selections {
		item, quote, err := c.composeLine(sel, locale)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if total, err = total.Add(quote.Total); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
		quotes = append(quotes, quote)
	}

	payload := &order.Payload{
		Items:        items,
		CustomerInfo: customer.Normalized(),
		Language:     locale,
	}
	if len(items) > 0 {
		payload.Total = pricing.FormatAmount(total, locale)
	}

	return &Composition{
		Payload: payload,
		Total:   total,
		Quotes:  quotes,
	}, nil
}

func (c *Composer) composeLine(sel order.CartSelection, locale i18n.Locale) (order.LineItem, pricing.Quote, error) {
	product, err := c.repo.GetProduct(sel.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return order.LineItem{}, pricing.Quote{}, shared.ErrUnknownProduct.WithMessage(
				fmt.Sprintf("unknown product %q", sel.ProductID))
		}
		return order.LineItem{}, pricing.Quote{}, err
	}

	quantity := sel.Quantity
	if quantity == 0 {
		quantity = c.engine.MinimumQuantity(product)
	}
	quote, err := c.engine.Quote(product, quantity)
	if err != nil {
		return order.LineItem{}, pricing.Quote{}, err
	}

	// An unknown variant id falls back to the default variant.
	display := catalog.ResolveDisplay(product, sel.VariantID, 0, locale)

	item := order.LineItem{
		Name:     product.DisplayName(locale),
		Quantity: quantity,
		Size:     product.Size.DisplayName(locale),
		Style:    product.Style.DisplayName(locale),
	}
	if !display.Placeholder {
		item.Variant = display.DisplayName
	}
	return item, quote, nil
}
