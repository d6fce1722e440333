package catalog

import (
	"errors"
	"fmt"

	"github.com/kashpo/storefront/internal/domain/i18n"
)

// ColorVariant is a color/appearance option of a product with its own image set
type ColorVariant struct {
	ID       string             `json:"id"`
	Name     i18n.LocalizedText `json:"name"`
	Images   []string           `json:"images"` // index 0 is the canonical image
	Color    string             `json:"color"`
	Gradient string             `json:"gradient,omitempty"` // overrides Color as swatch when set
}

// Swatch returns the visual swatch: the gradient when defined, else the plain color
func (v *ColorVariant) Swatch() string {
	if v.Gradient != "" {
		return v.Gradient
	}
	return v.Color
}

// PrimaryImage returns the canonical representative image
func (v *ColorVariant) PrimaryImage() string {
	if len(v.Images) == 0 {
		return ""
	}
	return v.Images[0]
}

// Clone returns a deep copy of the variant
func (v *ColorVariant) Clone() ColorVariant {
	out := *v
	out.Name = v.Name.Clone()
	if v.Images != nil {
		out.Images = make([]string, len(v.Images))
		copy(out.Images, v.Images)
	}
	return out
}

// Validate checks variant invariants
func (v *ColorVariant) Validate() error {
	if v.ID == "" {
		return errors.New("variant id cannot be empty")
	}
	if len(v.Images) == 0 {
		return fmt.Errorf("variant %s: images cannot be empty", v.ID)
	}
	for i, img := range v.Images {
		if img == "" {
			return fmt.Errorf("variant %s: image %d is empty", v.ID, i)
		}
	}
	if v.Color == "" {
		return fmt.Errorf("variant %s: color cannot be empty", v.ID)
	}
	if missing := v.Name.MissingLocales(); len(missing) > 0 {
		return fmt.Errorf("variant %s: name missing locales %v", v.ID, missing)
	}
	return nil
}
