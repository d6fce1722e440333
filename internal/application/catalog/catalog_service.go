// Package catalog serves localized product listings, product pages and quotes.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kashpo/storefront/internal/domain/catalog"
	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/pricing"
	"github.com/kashpo/storefront/internal/domain/shared"
)

// DefaultSearchDebounce is the quiet window of interactive search sessions
const DefaultSearchDebounce = 300 * time.Millisecond

// CatalogService handles catalog read operations
type CatalogService struct {
	repo           catalog.Repository
	engine         *pricing.Engine
	searchDebounce time.Duration
}

// ServiceOption configures a CatalogService
type ServiceOption func(*CatalogService)

// WithSearchDebounce sets the quiet window used by NewSearchSession
func WithSearchDebounce(d time.Duration) ServiceOption {
	return func(s *CatalogService) {
		if d > 0 {
			s.searchDebounce = d
		}
	}
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo catalog.Repository, engine *pricing.Engine, opts ...ServiceOption) *CatalogService {
	s := &CatalogService{
		repo:           repo,
		engine:         engine,
		searchDebounce: DefaultSearchDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns localized product cards matching filter, in catalog order
func (s *CatalogService) List(filter catalog.ProductFilter, locale i18n.Locale) ([]ProductSummaryResponse, error) {
	locale = normalizeLocale(locale)
	products := s.repo.ListProducts(filter)

	out := make([]ProductSummaryResponse, 0, len(products))
	for i := range products {
		summary, err := s.summarize(&products[i], locale)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

// Search is a case-insensitive substring search over names and descriptions
// in every locale. It is synchronous and has no side effects.
func (s *CatalogService) Search(query string, locale i18n.Locale) ([]ProductSummaryResponse, error) {
	return s.List(catalog.ProductFilter{Query: query}, locale)
}

// Get returns the product page for id with variantID and imageIndex resolved.
// An unknown variant or an out-of-range image index never fails; see catalog.ResolveDisplay.
func (s *CatalogService) Get(id, variantID string, imageIndex int, locale i18n.Locale) (*ProductDetailResponse, error) {
	locale = normalizeLocale(locale)
	product, err := s.repo.GetProduct(id)
	if err != nil {
		return nil, err
	}

	display := catalog.ResolveDisplay(product, variantID, imageIndex, locale)
	quote, err := s.startingQuote(product)
	if err != nil {
		return nil, err
	}

	features := make([]string, 0, len(product.Features))
	for _, f := range product.Features {
		features = append(features, i18n.Resolve(f, locale, i18n.DefaultLocale))
	}

	variants := make([]VariantResponse, 0, len(product.Variants))
	for i := range product.Variants {
		v := &product.Variants[i]
		variants = append(variants, VariantResponse{
			ID:       v.ID,
			Name:     i18n.Resolve(v.Name, locale, i18n.DefaultLocale),
			Color:    v.Color,
			Swatch:   v.Swatch(),
			Images:   append([]string(nil), v.Images...),
			Selected: v.ID == display.Variant.ID,
		})
	}

	return &ProductDetailResponse{
		ID:              product.ID,
		Category:        product.Category,
		Name:            product.DisplayName(locale),
		Description:     i18n.Resolve(product.Description, locale, i18n.DefaultLocale),
		Size:            product.Size.DisplayName(locale),
		Style:           product.Style.DisplayName(locale),
		Dimensions:      product.Dimensions,
		Features:        features,
		Variants:        variants,
		VariantID:       display.Variant.ID,
		VariantName:     display.DisplayName,
		Image:           display.Image,
		ImageIndex:      display.ImageIndex,
		Popular:         product.Popular,
		DiscountPercent: product.DiscountPercent,
		Quote:           quote,
		PriceText:       pricing.FormatAmount(quote.Total, locale),
		QuantityText:    pricing.FormatQuantity(quote.Quantity, quote.Unit, locale),
		MinimumOrder:    quote.Quantity > 1,
	}, nil
}

// Quote prices quantity units of product id. A zero quantity quotes the
// product's minimum order quantity; a bulk quantity under the minimum fails.
func (s *CatalogService) Quote(id string, quantity int64) (pricing.Quote, error) {
	product, err := s.repo.GetProduct(id)
	if err != nil {
		return pricing.Quote{}, err
	}
	if quantity == 0 {
		quantity = s.engine.MinimumQuantity(product)
	}
	return s.engine.Quote(product, quantity)
}

// NewSearchSession starts a debounced interactive search in locale.
// onResult receives only the results of the latest query after the quiet window.
// The HTTP API searches synchronously; sessions serve embedding callers that
// drive search from keystrokes.
func (s *CatalogService) NewSearchSession(locale i18n.Locale, onResult func(query string, results []ProductSummaryResponse)) *SearchDebouncer[[]ProductSummaryResponse] {
	evaluate := func(ctx context.Context, query string) ([]ProductSummaryResponse, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return s.Search(query, locale)
	}
	return NewSearchDebouncer(s.searchDebounce, evaluate, onResult)
}

func (s *CatalogService) summarize(p *catalog.Product, locale i18n.Locale) (ProductSummaryResponse, error) {
	display := catalog.ResolveDisplay(p, "", 0, locale)
	quote, err := s.startingQuote(p)
	if err != nil {
		return ProductSummaryResponse{}, err
	}

	summary := ProductSummaryResponse{
		ID:              p.ID,
		Category:        p.Category,
		Name:            p.DisplayName(locale),
		Description:     i18n.Resolve(p.Description, locale, i18n.DefaultLocale),
		Image:           display.Image,
		Popular:         p.Popular,
		DiscountPercent: p.DiscountPercent,
		Quote:           quote,
		PriceText:       pricing.FormatAmount(quote.Total, locale),
		MinimumOrder:    quote.Quantity > 1,
	}
	if !display.Placeholder {
		summary.Swatch = display.Variant.Swatch()
	}
	return summary, nil
}

// startingQuote prices one unit, or the minimum order quantity for bulk material
func (s *CatalogService) startingQuote(p *catalog.Product) (pricing.Quote, error) {
	quote, err := s.engine.Quote(p, s.engine.MinimumQuantity(p))
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCatalog) {
			return pricing.Quote{}, fmt.Errorf("product %s is not priceable: %w", p.ID, err)
		}
		return pricing.Quote{}, err
	}
	return quote, nil
}

func normalizeLocale(locale i18n.Locale) i18n.Locale {
	if !locale.IsValid() {
		return i18n.DefaultLocale
	}
	return locale
}
