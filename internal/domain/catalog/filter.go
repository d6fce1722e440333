package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// ProductFilter narrows a product listing. Zero value matches everything.
type ProductFilter struct {
	Category    Category
	PopularOnly bool
	// Query is matched case-insensitively against names and descriptions in every locale
	Query string
}

// Matches returns true if the product passes every set criterion.
// Evaluation is synchronous and has no side effects.
func (f ProductFilter) Matches(p *Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.PopularOnly && !p.Popular {
		return false
	}
	query := normalizeQuery(f.Query)
	if query == "" {
		return true
	}
	return matchesQuery(p, query)
}

func matchesQuery(p *Product, query string) bool {
	for _, text := range p.Name {
		if strings.Contains(fold(text), query) {
			return true
		}
	}
	for _, text := range p.Description {
		if strings.Contains(fold(text), query) {
			return true
		}
	}
	for i := range p.Variants {
		for _, text := range p.Variants[i].Name {
			if strings.Contains(fold(text), query) {
				return true
			}
		}
	}
	return strings.Contains(fold(p.ID), query)
}

func normalizeQuery(q string) string {
	return fold(strings.Join(strings.Fields(q), " "))
}

// fold applies Unicode case folding; a new Caser per call since Casers are not concurrency-safe
func fold(s string) string {
	return cases.Fold().String(s)
}
