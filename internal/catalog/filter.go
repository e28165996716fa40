package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// PerPage is the fixed number of products shown on one shop page.
const PerPage = 12

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ParseSortKey maps unknown keys to SortFeatured.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return k
	default:
		return SortFeatured
	}
}

// Query parameter names shared by the shop page and the JSON API.
const (
	ParamSearch      = "q"
	ParamCategory    = "category"
	ParamMetal       = "metal"
	ParamEnamelColor = "enamel_color"
	ParamMinPrice    = "min"
	ParamMaxPrice    = "max"
	ParamSort        = "sort"
	ParamPage        = "page"
)

// Selection is a facet selection kept in the order values were picked.
// An empty selection places no constraint on the facet.
type Selection []string

func NewSelection(values ...string) Selection {
	var s Selection
	for _, v := range values {
		s = s.Add(v)
	}
	return s
}

func (s Selection) Has(v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func (s Selection) Add(v string) Selection {
	if v == "" || s.Has(v) {
		return s
	}
	return append(s, v)
}

func (s Selection) Remove(v string) Selection {
	out := make(Selection, 0, len(s))
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// Allows reports whether a product whose facet field is v passes.
func (s Selection) Allows(v string) bool {
	return len(s) == 0 || s.Has(v)
}

// FilterState is everything the shop view is computed from besides the
// catalog itself.
type FilterState struct {
	Search      string
	Category    Selection
	Metal       Selection
	EnamelColor Selection
	MinPrice    *float64
	MaxPrice    *float64
	Sort        SortKey
	Page        int
}

// NewFilterState returns the unconstrained state on page 1.
func NewFilterState() FilterState {
	return FilterState{Sort: SortFeatured, Page: 1}
}

// HasPriceBound reports whether either price bound is set.
func (f FilterState) HasPriceBound() bool {
	return f.MinPrice != nil || f.MaxPrice != nil
}

// WithPage returns a copy of f positioned on page.
func (f FilterState) WithPage(page int) FilterState {
	f.Page = page
	return f
}

// ParseQuery builds a FilterState from URL query parameters. Unparsable
// price bounds are dropped and the page defaults to 1.
func ParseQuery(values url.Values) FilterState {
	f := NewFilterState()
	f.Search = values.Get(ParamSearch)
	f.Category = NewSelection(values[ParamCategory]...)
	f.Metal = NewSelection(values[ParamMetal]...)
	f.EnamelColor = NewSelection(values[ParamEnamelColor]...)
	f.MinPrice = parseBound(values.Get(ParamMinPrice))
	f.MaxPrice = parseBound(values.Get(ParamMaxPrice))
	f.Sort = ParseSortKey(values.Get(ParamSort))
	if p, err := strconv.Atoi(values.Get(ParamPage)); err == nil && p > 1 {
		f.Page = p
	}
	return f
}

func parseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Values encodes f back into query parameters. Defaults are omitted so that
// links stay short.
func (f FilterState) Values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set(ParamSearch, f.Search)
	}
	for _, c := range f.Category {
		v.Add(ParamCategory, c)
	}
	for _, m := range f.Metal {
		v.Add(ParamMetal, m)
	}
	for _, e := range f.EnamelColor {
		v.Add(ParamEnamelColor, e)
	}
	if f.MinPrice != nil {
		v.Set(ParamMinPrice, formatNumber(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		v.Set(ParamMaxPrice, formatNumber(*f.MaxPrice))
	}
	if f.Sort != "" && f.Sort != SortFeatured {
		v.Set(ParamSort, string(f.Sort))
	}
	if f.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(f.Page))
	}
	return v
}

// Encode is Values().Encode().
func (f FilterState) Encode() string {
	return f.Values().Encode()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
