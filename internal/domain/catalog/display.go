package catalog

import "github.com/kashpo/storefront/internal/domain/i18n"

// PlaceholderVariantID identifies the variant synthesized for products without variants
const PlaceholderVariantID = "default"

// Display is the resolved presentation of a product selection
type Display struct {
	Variant     ColorVariant
	ImageIndex  int
	Image       string
	DisplayName string
	Placeholder bool
}

// ResolveDisplay picks the variant and image to show for a product.
//
// Variant selection: the variant whose id equals variantID; otherwise the
// product's first variant (the default variant); otherwise a placeholder built
// from the product's fallback image and name. Products without variants are
// valid and always resolve.
//
// Image selection: index 0 (canonical) unless imageIndex asks for another
// gallery image. Negative indexes resolve to 0 and indexes past the end clamp
// to the last image.
func ResolveDisplay(p *Product, variantID string, imageIndex int, locale i18n.Locale) Display {
	var (
		variant     ColorVariant
		placeholder bool
	)

	if v, ok := p.FindVariant(variantID); ok && variantID != "" {
		variant = v.Clone()
	} else if p.HasVariants() {
		variant = p.Variants[0].Clone()
	} else {
		variant = placeholderVariant(p)
		placeholder = true
	}
	if len(variant.Images) == 0 {
		// unvalidated definitions only; the catalog rejects imageless variants
		variant.Images = []string{p.Image}
	}

	idx := clampImageIndex(imageIndex, len(variant.Images))

	return Display{
		Variant:     variant,
		ImageIndex:  idx,
		Image:       variant.Images[idx],
		DisplayName: i18n.Resolve(variant.Name, locale, i18n.DefaultLocale),
		Placeholder: placeholder,
	}
}

// DefaultVariantID returns the id ResolveDisplay falls back to
func (p *Product) DefaultVariantID() string {
	if p.HasVariants() {
		return p.Variants[0].ID
	}
	return PlaceholderVariantID
}

func placeholderVariant(p *Product) ColorVariant {
	return ColorVariant{
		ID:     PlaceholderVariantID,
		Name:   p.Name.Clone(),
		Images: []string{p.Image},
		Color:  "transparent",
	}
}

func clampImageIndex(index, count int) int {
	if index <= 0 || count == 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
