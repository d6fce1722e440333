package catalog

import (
	"fmt"
	"strings"

	"github.com/kashpo/storefront/internal/domain/i18n"
	"github.com/kashpo/storefront/internal/domain/shared"
)

// Category classifies how a product is sold and priced
type Category string

const (
	// CategoryContainer is a planter sold per piece, priced by size
	CategoryContainer Category = "container"
	// CategoryFiber is bulk woven-fiber material sold by weight with a minimum order
	CategoryFiber Category = "fiber"
)

// IsValid returns true if the category is one of the known categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryContainer, CategoryFiber:
		return true
	default:
		return false
	}
}

// Size is the volume class of a container
type Size string

const (
	Size5L  Size = "5L"
	Size10L Size = "10L"
	Size16L Size = "16L"
)

// IsValid returns true if the size is one of the known sizes
func (s Size) IsValid() bool {
	switch s {
	case Size5L, Size10L, Size16L:
		return true
	default:
		return false
	}
}

// DisplayName returns the localized volume label, e.g. "10 л"
func (s Size) DisplayName(locale i18n.Locale) string {
	if !s.IsValid() {
		return ""
	}
	litres := strings.TrimSuffix(string(s), "L")
	if locale == i18n.LocaleUZ {
		return litres + " l"
	}
	return litres + " л"
}

// AllSizes returns the container sizes in ascending order
func AllSizes() []Size {
	return []Size{Size5L, Size10L, Size16L}
}

// Style is the shape of a container
type Style string

const (
	StyleClassic Style = "classic"
	// StyleRound is the soft-form shape
	StyleRound Style = "round"
)

// IsValid returns true if the style is one of the known styles
func (s Style) IsValid() bool {
	switch s {
	case StyleClassic, StyleRound:
		return true
	default:
		return false
	}
}

var styleNames = map[Style]i18n.LocalizedText{
	StyleClassic: i18n.Text("Классический", "Klassik"),
	StyleRound:   i18n.Text("Округлый", "Dumaloq"),
}

// DisplayName returns the localized style label
func (s Style) DisplayName(locale i18n.Locale) string {
	return i18n.Resolve(styleNames[s], locale, i18n.DefaultLocale)
}

// Dimensions are physical measurements in millimeters
type Dimensions struct {
	HeightMM   int `json:"height_mm"`
	DiameterMM int `json:"diameter_mm"`
}

// Product is an immutable catalog entry.
// Products are defined once at startup and never mutated afterwards.
type Product struct {
	ID              string               `json:"id"`
	Category        Category             `json:"category"`
	Size            Size                 `json:"size,omitempty"`
	Style           Style                `json:"style,omitempty"`
	Dimensions      *Dimensions          `json:"dimensions,omitempty"`
	Name            i18n.LocalizedText   `json:"name"`
	Description     i18n.LocalizedText   `json:"description"`
	Features        []i18n.LocalizedText `json:"features,omitempty"`
	Variants        []ColorVariant       `json:"variants,omitempty"`
	Image           string               `json:"image,omitempty"` // used when the product has no variants
	Popular         bool                 `json:"popular,omitempty"`
	DiscountPercent int                  `json:"discount_percent,omitempty"`
}

// IsBulk returns true if the product is sold by weight
func (p *Product) IsBulk() bool {
	return p.Category == CategoryFiber
}

// HasVariants returns true if the product has at least one color variant
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// DisplayName returns the localized product name
func (p *Product) DisplayName(locale i18n.Locale) string {
	return i18n.Resolve(p.Name, locale, i18n.DefaultLocale)
}

// FindVariant returns the variant with the given id
func (p *Product) FindVariant(variantID string) (*ColorVariant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy sharing no mutable state with p
func (p *Product) Clone() Product {
	out := *p
	out.Name = p.Name.Clone()
	out.Description = p.Description.Clone()
	if p.Dimensions != nil {
		d := *p.Dimensions
		out.Dimensions = &d
	}
	if p.Features != nil {
		out.Features = make([]i18n.LocalizedText, len(p.Features))
		for i, f := range p.Features {
			out.Features[i] = f.Clone()
		}
	}
	if p.Variants != nil {
		out.Variants = make([]ColorVariant, len(p.Variants))
		for i := range p.Variants {
			out.Variants[i] = p.Variants[i].Clone()
		}
	}
	return out
}

// Validate checks the product definition against catalog invariants
func (p *Product) Validate() error {
	if p.ID == "" {
		return invalidCatalog("product id cannot be empty")
	}
	if !p.Category.IsValid() {
		return invalidCatalog("product %s: unknown category %q", p.ID, p.Category)
	}
	switch p.Category {
	case CategoryContainer:
		if !p.Size.IsValid() {
			return invalidCatalog("product %s: container requires a size, got %q", p.ID, p.Size)
		}
	case CategoryFiber:
		if p.Size != "" {
			return invalidCatalog("product %s: fiber material has no size", p.ID)
		}
	}
	if p.Style != "" && !p.Style.IsValid() {
		return invalidCatalog("product %s: unknown style %q", p.ID, p.Style)
	}
	if d := p.Dimensions; d != nil && (d.HeightMM <= 0 || d.DiameterMM <= 0) {
		return invalidCatalog("product %s: dimensions must be positive", p.ID)
	}
	if missing := p.Name.MissingLocales(); len(missing) > 0 {
		return invalidCatalog("product %s: name missing locales %v", p.ID, missing)
	}
	if missing := p.Description.MissingLocales(); len(missing) > 0 {
		return invalidCatalog("product %s: description missing locales %v", p.ID, missing)
	}
	for i, f := range p.Features {
		if missing := f.MissingLocales(); len(missing) > 0 {
			return invalidCatalog("product %s: feature %d missing locales %v", p.ID, i, missing)
		}
	}
	if p.DiscountPercent < 0 || p.DiscountPercent >= 100 {
		return invalidCatalog("product %s: discount percent must be in [0, 100)", p.ID)
	}
	if !p.HasVariants() && p.Image == "" {
		return invalidCatalog("product %s: a product without variants needs a fallback image", p.ID)
	}

	seen := make(map[string]struct{}, len(p.Variants))
	for i := range p.Variants {
		v := &p.Variants[i]
		if _, dup := seen[v.ID]; dup {
			return invalidCatalog("product %s: duplicate variant id %q", p.ID, v.ID)
		}
		seen[v.ID] = struct{}{}
		if err := v.Validate(); err != nil {
			return invalidCatalog("product %s: %s", p.ID, err.Error())
		}
	}
	return nil
}

func invalidCatalog(format string, args ...any) error {
	return shared.ErrInvalidCatalog.WithMessage(fmt.Sprintf(format, args...))
}
