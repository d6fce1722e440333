package handler

import (
	"github.com/kashpo/storefront/internal/domain/order"
	"github.com/kashpo/storefront/internal/infrastructure/phone"
)

// CartItemRequest is one cart line in a request body.
// Zero quantity means the product's default quantity.
type CartItemRequest struct {
	ProductID string `json:"productId" binding:"required,max=64"`
	VariantID string `json:"variantId" binding:"max=64"`
	Quantity  int64  `json:"quantity" binding:"gte=0"`
}

// PutCartRequest replaces the cart's lines
type PutCartRequest struct {
	Items []CartItemRequest `json:"items" binding:"max=50,dive"`
}

// CustomerRequest is the checkout contact data. Presence of name and phone is
// checked by the order composer so that it reports INVALID_CUSTOMER.
type CustomerRequest struct {
	Name    string `json:"name" binding:"max=200"`
	Phone   string `json:"phone" binding:"max=32"`
	Address string `json:"address" binding:"max=500"`
	Notes   string `json:"notes" binding:"max=2000"`
}

// OrderRequest submits either explicit items or the stored cart of Session
type OrderRequest struct {
	Session  string            `json:"session" binding:"max=128"`
	Items    []CartItemRequest `json:"items" binding:"max=50,dive"`
	Customer CustomerRequest   `json:"customer"`
}

// ContactRequest is the contact form: a customer with no items
type ContactRequest struct {
	CustomerRequest
}

// ToSelections converts request lines to domain selections
func ToSelections(items []CartItemRequest) []order.CartSelection {
	out := make([]order.CartSelection, 0, len(items))
	for _, item := range items {
		out = append(out, order.CartSelection{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}
	return out
}

// ToCustomer converts the request to domain customer info with the phone in E.164 when it parses
func (r CustomerRequest) ToCustomer() order.CustomerInfo {
	return order.CustomerInfo{
		Name:    r.Name,
		Phone:   phone.NormalizeE164(r.Phone),
		Address: r.Address,
		Notes:   r.Notes,
	}
}
