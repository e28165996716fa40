package catalog

import "github.com/ikkim/udonggeum-storefront/internal/app/model"

// Facets lists the values offered in the filter sidebar, in order of first
// appearance in the catalog, and the catalog price range.
type Facets struct {
	Categories   []string `json:"categories"`
	Metals       []string `json:"metals"`
	EnamelColors []string `json:"enamel_colors"`
	MinPrice     float64  `json:"min_price"`
	MaxPrice     float64  `json:"max_price"`
}

func CollectFacets(products []model.Product) Facets {
	var f Facets
	cats, metals, colors := Selection{}, Selection{}, Selection{}
	for i, p := range products {
		cats = cats.Add(p.Category)
		metals = metals.Add(p.Metal)
		colors = colors.Add(p.EnamelColor)
		if i == 0 || p.Price < f.MinPrice {
			f.MinPrice = p.Price
		}
		if i == 0 || p.Price > f.MaxPrice {
			f.MaxPrice = p.Price
		}
	}
	f.Categories = cats
	f.Metals = metals
	f.EnamelColors = colors
	return f
}
