package catalog

import (
	"github.com/kashpo/storefront/internal/domain/catalog"
	"github.com/kashpo/storefront/internal/domain/pricing"
)

// VariantResponse represents a color variant in API responses
type VariantResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Swatch   string   `json:"swatch"`
	Images   []string `json:"images"`
	Selected bool     `json:"selected"`
}

// ProductSummaryResponse represents a product card in listings
type ProductSummaryResponse struct {
	ID              string           `json:"id"`
	Category        catalog.Category `json:"category"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Image           string           `json:"image"`
	Swatch          string           `json:"swatch,omitempty"`
	Popular         bool             `json:"popular"`
	DiscountPercent int              `json:"discount_percent,omitempty"`
	Quote           pricing.Quote    `json:"quote"`
	PriceText       string           `json:"price_text"`
	// MinimumOrder is set when Quote is for the minimum order quantity rather than one unit
	MinimumOrder bool `json:"minimum_order,omitempty"`
}

// ProductDetailResponse represents a product page with its resolved display
type ProductDetailResponse struct {
	ID              string              `json:"id"`
	Category        catalog.Category    `json:"category"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Size            string              `json:"size,omitempty"`
	Style           string              `json:"style,omitempty"`
	Dimensions      *catalog.Dimensions `json:"dimensions,omitempty"`
	Features        []string            `json:"features"`
	Variants        []VariantResponse   `json:"variants"`
	VariantID       string              `json:"variant_id"`
	VariantName     string              `json:"variant_name"`
	Image           string              `json:"image"`
	ImageIndex      int                 `json:"image_index"`
	Popular         bool                `json:"popular"`
	DiscountPercent int                 `json:"discount_percent,omitempty"`
	Quote           pricing.Quote       `json:"quote"`
	PriceText       string              `json:"price_text"`
	QuantityText    string              `json:"quantity_text"`
	MinimumOrder    bool                `json:"minimum_order,omitempty"`
}
