package handler

import "github.com/kashpo/storefront/internal/domain/pricing"

// ListProductsQuery filters the product listing
type ListProductsQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=container fiber"`
	Popular  bool   `form:"popular"`
	Q        string `form:"q" binding:"max=100"`
}

// GetProductQuery selects the variant and gallery image of a product page.
// Unknown variants and out-of-range images resolve to defaults rather than failing.
type GetProductQuery struct {
	Variant string `form:"variant" binding:"max=64"`
	Image   int    `form:"image"`
}

// QuoteQuery asks for a price; zero or absent quantity quotes the minimum order
type QuoteQuery struct {
	Quantity int64 `form:"quantity" binding:"gte=0"`
}

// QuoteResponse is a quote with its localized display strings
type QuoteResponse struct {
	pricing.Quote
	TotalText    string `json:"total_text"`
	QuantityText string `json:"quantity_text"`
}
