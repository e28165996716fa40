package catalog

import "fmt"

// Chip is one removable active constraint.
type Chip struct {
	Label string `json:"label"`
	// Facet is the query parameter the chip belongs to; price chips use
	// ParamMinPrice.
	Facet string `json:"facet"`
	Value string `json:"value"`
	// Remove is the encoded query of the state without this constraint,
	// always on page 1.
	Remove string `json:"remove"`
}

// Chips lists one chip per selected facet value (categories, then metals,
// then enamel colors, each in selection order) and one combined chip when a
// price bound is active.
func Chips(f FilterState) []Chip {
	base := f.WithPage(1)
	var chips []Chip

	for _, v := range f.Category {
		next := base
		next.Category = f.Category.Remove(v)
		chips = append(chips, Chip{Label: v, Facet: ParamCategory, Value: v, Remove: next.Encode()})
	}
	for _, v := range f.Metal {
		next := base
		next.Metal = f.Metal.Remove(v)
		chips = append(chips, Chip{Label: v, Facet: ParamMetal, Value: v, Remove: next.Encode()})
	}
	for _, v := range f.EnamelColor {
		next := base
		next.EnamelColor = f.EnamelColor.Remove(v)
		chips = append(chips, Chip{Label: v, Facet: ParamEnamelColor, Value: v, Remove: next.Encode()})
	}
	if f.HasPriceBound() {
		next := base
		next.MinPrice, next.MaxPrice = nil, nil
		chips = append(chips, Chip{Label: PriceChipLabel(f.MinPrice, f.MaxPrice), Facet: ParamMinPrice, Remove: next.Encode()})
	}
	return chips
}

// PriceChipLabel renders "Prix min–max€" with 0 and ∞ for open bounds.
func PriceChipLabel(minPrice, maxPrice *float64) string {
	lo, hi := "0", "∞"
	if minPrice != nil {
		lo = formatNumber(*minPrice)
	}
	if maxPrice != nil {
		hi = formatNumber(*maxPrice)
	}
	return fmt.Sprintf("Prix %s–%s€", lo, hi)
}

// CountLabel is the result counter text.
func CountLabel(n int) string {
	if n > 1 {
		return fmt.Sprintf("%d résultats", n)
	}
	return fmt.Sprintf("%d résultat", n)
}
