package model

// DefaultCurrency is applied to catalog records that omit a currency code.
const DefaultCurrency = "EUR"

// Product is one record of the catalog document. Records are read-only once
// the catalog snapshot is published.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Metal       string   `json:"metal"`
	EnamelColor string   `json:"enamel_color"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Gallery returns the full image list, falling back to the thumbnail.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Thumbnail != "" {
		return []string{p.Thumbnail}
	}
	return nil
}
