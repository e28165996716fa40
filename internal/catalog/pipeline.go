package catalog

import (
	"sort"
	"strings"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
)

// Result is one computed shop view.
type Result struct {
	Total      int
	Page       int
	TotalPages int
	Items      []model.Product
	Chips      []Chip
	State      FilterState
}

func (r Result) HasPrev() bool {
	return r.Page > 1
}

func (r Result) HasNext() bool {
	return r.Page < r.TotalPages
}

// Apply runs the shop pipeline over products: text search, facet filters
// (category, metal, enamel color), price bounds, sort, then pagination. The
// input slice is never modified. A nil collator uses the "fr" collation.
func Apply(products []model.Product, f FilterState, col *Collator) Result {
	if col == nil {
		col = NewCollator("fr")
	}

	items := filter(products, f)
	sortProducts(items, f.Sort, col)

	total := len(items)
	totalPages := PageCount(total)
	page := f.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	f.Page = page

	start := (page - 1) * PerPage
	end := start + PerPage
	if end > total {
		end = total
	}

	return Result{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Items:      items[start:end],
		Chips:      Chips(f),
		State:      f,
	}
}

// PageCount is ceil(total/PerPage), never less than 1.
func PageCount(total int) int {
	pages := (total + PerPage - 1) / PerPage
	if pages < 1 {
		return 1
	}
	return pages
}

func filter(products []model.Product, f FilterState) []model.Product {
	items := make([]model.Product, len(products))
	copy(items, products)

	if strings.TrimSpace(f.Search) != "" {
		items = keep(items, func(p model.Product) bool { return matchesText(p, f.Search) })
	}
	if len(f.Category) > 0 {
		items = keep(items, func(p model.Product) bool { return f.Category.Allows(p.Category) })
	}
	if len(f.Metal) > 0 {
		items = keep(items, func(p model.Product) bool { return f.Metal.Allows(p.Metal) })
	}
	if len(f.EnamelColor) > 0 {
		items = keep(items, func(p model.Product) bool { return f.EnamelColor.Allows(p.EnamelColor) })
	}
	if f.MinPrice != nil {
		lo := *f.MinPrice
		items = keep(items, func(p model.Product) bool { return p.Price >= lo })
	}
	if f.MaxPrice != nil {
		hi := *f.MaxPrice
		items = keep(items, func(p model.Product) bool { return p.Price <= hi })
	}
	return items
}

// matchesText is a case-insensitive substring test on name, category and
// description. A blank query matches everything; otherwise the query is used
// as typed, surrounding spaces included.
func matchesText(p model.Product, search string) bool {
	if strings.TrimSpace(search) == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func keep(items []model.Product, pred func(model.Product) bool) []model.Product {
	out := items[:0]
	for _, p := range items {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func sortProducts(items []model.Product, key SortKey, col *Collator) {
	var less func(a, b model.Product) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b model.Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b model.Product) bool { return a.Price > b.Price }
	case SortNameAsc:
		less = func(a, b model.Product) bool { return col.Compare(a.Name, b.Name) < 0 }
	case SortNameDesc:
		less = func(a, b model.Product) bool { return col.Compare(b.Name, a.Name) < 0 }
	default:
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
