// Package order holds the caller-owned cart and the frozen order payload sent to
// the notification channel. Nothing here is persisted by the core.
package order

import (
	"strings"

	"github.com/kashpo/storefront/internal/domain/shared"
)

// CartSelection is one line of a cart.
// An empty VariantID means the product's default variant.
// A zero Quantity means the product's default quantity: 1 for piece goods,
// the minimum order quantity for bulk material.
type CartSelection struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int64  `json:"quantity,omitempty"`
}

// CustomerInfo is the contact data entered at checkout
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Normalized returns a copy with surrounding whitespace trimmed
func (c CustomerInfo) Normalized() CustomerInfo {
	return CustomerInfo{
		Name:    strings.TrimSpace(c.Name),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
		Notes:   strings.TrimSpace(c.Notes),
	}
}

// Validate requires a name and a phone. The phone format is not checked here.
func (c CustomerInfo) Validate() error {
	n := c.Normalized()
	if n.Name == "" {
		return shared.ErrInvalidCustomer.WithMessage("customer name is required")
	}
	if n.Phone == "" {
		return shared.ErrInvalidCustomer.WithMessage("customer phone is required")
	}
	return nil
}
