package view

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/ikkim/udonggeum-storefront/internal/catalog"
	"golang.org/x/net/html"
)

type ChipView struct {
	Label string
	Href  string
}

type FacetOption struct {
	Value   string
	Checked bool
}

type FacetGroup struct {
	Param   string
	Title   string
	Options []FacetOption
}

type SortOption struct {
	Key      catalog.SortKey
	Label    string
	Selected bool
}

// PagerButton is a prev/next control; Disabled is set at the list bounds.
type PagerButton struct {
	Page     int
	Disabled bool
}

type ShopView struct {
	Search      string
	SortOptions []SortOption
	Facets      []FacetGroup
	MinPrice    string
	MaxPrice    string

	Count    string
	Chips    []ChipView
	Cards    []CardView
	PageInfo string
	Prev     PagerButton
	Next     PagerButton

	// Carried hidden state for the pager form (everything but page).
	State url.Values
	// ReturnTo is the URL quick-add forms come back to.
	ReturnTo string
}

var sortLabels = []SortOption{
	{Key: catalog.SortFeatured, Label: "En vedette"},
	{Key: catalog.SortPriceAsc, Label: "Prix croissant"},
	{Key: catalog.SortPriceDesc, Label: "Prix décroissant"},
	{Key: catalog.SortNameAsc, Label: "Nom A–Z"},
	{Key: catalog.SortNameDesc, Label: "Nom Z–A"},
}

func NewShopView(res catalog.Result, facets catalog.Facets, prices PriceFormatter) ShopView {
	f := res.State

	v := ShopView{
		Search:   f.Search,
		Count:    catalog.CountLabel(res.Total),
		PageInfo: "Page " + strconv.Itoa(res.Page) + " / " + strconv.Itoa(res.TotalPages),
		Prev:     PagerButton{Page: res.Page - 1, Disabled: !res.HasPrev()},
		Next:     PagerButton{Page: res.Page + 1, Disabled: !res.HasNext()},
		ReturnTo: ShopHref(f),
	}
	if f.MinPrice != nil {
		v.MinPrice = strconv.FormatFloat(*f.MinPrice, 'f', -1, 64)
	}
	if f.MaxPrice != nil {
		v.MaxPrice = strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64)
	}

	for _, s := range sortLabels {
		s.Selected = s.Key == f.Sort
		v.SortOptions = append(v.SortOptions, s)
	}

	v.Facets = []FacetGroup{
		facetGroup(catalog.ParamCategory, "Catégorie", facets.Categories, f.Category),
		facetGroup(catalog.ParamMetal, "Métal", facets.Metals, f.Metal),
		facetGroup(catalog.ParamEnamelColor, "Émail", facets.EnamelColors, f.EnamelColor),
	}

	for _, c := range res.Chips {
		v.Chips = append(v.Chips, ChipView{Label: c.Label, Href: "/shop" + query(c.Remove)})
	}
	for _, p := range res.Items {
		v.Cards = append(v.Cards, NewCardView(p, prices))
	}

	v.State = f.WithPage(1).Values()
	return v
}

func facetGroup(param, title string, values []string, selected catalog.Selection) FacetGroup {
	g := FacetGroup{Param: param, Title: title}
	for _, val := range values {
		g.Options = append(g.Options, FacetOption{Value: val, Checked: selected.Has(val)})
	}
	// keep selections that are not in the catalog visible so they can be unchecked
	for _, val := range selected {
		found := false
		for _, o := range g.Options {
			if o.Value == val {
				found = true
				break
			}
		}
		if !found {
			g.Options = append(g.Options, FacetOption{Value: val, Checked: true})
		}
	}
	return g
}

// ShopHref is the shop URL for a filter state.
func ShopHref(f catalog.FilterState) string {
	return "/shop" + query(f.Encode())
}

func query(encoded string) string {
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}

// RenderShop paints the filter sidebar, meta line with chips, product grid
// and pager.
func RenderShop(ctx PageContext, v ShopView) *html.Node {
	return Document(ctx,
		el("div", attrs("class", "shop"),
			renderFilters(v),
			el("section", attrs("class", "results"),
				renderMeta(v),
				renderGrid(v),
				renderPager(v),
			),
		),
	)
}

func renderFilters(v ShopView) *html.Node {
	form := el("form", attrs("id", "filters", "method", "get", "action", "/shop"),
		el("input", attrs("id", "search", "type", "search", "name", catalog.ParamSearch, "value", v.Search, "placeholder", "Rechercher")),
	)

	sel := el("select", attrs("id", "sort", "name", catalog.ParamSort))
	for _, s := range v.SortOptions {
		a := attrs("value", string(s.Key))
		if s.Selected {
			a = append(a, html.Attribute{Key: "selected", Val: ""})
		}
		sel.AppendChild(el("option", a, text(s.Label)))
	}
	form.AppendChild(sel)

	for _, g := range v.Facets {
		fs := el("fieldset", attrs("data-facet", g.Param), el("legend", nil, text(g.Title)))
		for _, o := range g.Options {
			a := attrs("type", "checkbox", "name", g.Param, "value", o.Value, "data-filter", g.Param)
			if o.Checked {
				a = append(a, html.Attribute{Key: "checked", Val: ""})
			}
			fs.AppendChild(el("label", nil, el("input", a), text(" "+o.Value)))
		}
		form.AppendChild(fs)
	}

	form.AppendChild(el("fieldset", attrs("class", "price"),
		el("legend", nil, text("Prix")),
		el("input", attrs("id", "minPrice", "type", "number", "min", "0", "name", catalog.ParamMinPrice, "value", v.MinPrice)),
		el("input", attrs("id", "maxPrice", "type", "number", "min", "0", "name", catalog.ParamMaxPrice, "value", v.MaxPrice)),
	))
	form.AppendChild(el("button", attrs("id", "applyPrice", "class", "btn primary", "type", "submit"), text("Appliquer")))
	form.AppendChild(el("a", attrs("id", "clearFilters", "class", "btn", "href", "/shop"), text("Réinitialiser")))

	return el("aside", attrs("class", "filters"), form)
}

func renderMeta(v ShopView) *html.Node {
	chips := el("div", attrs("id", "activeChips"))
	for _, c := range v.Chips {
		chips.AppendChild(el("span", attrs("class", "chip"),
			text(c.Label+" "),
			el("a", attrs("href", c.Href, "aria-label", "Supprimer", "data-chip-remove", ""), text("×")),
		))
	}
	return el("div", attrs("class", "meta"),
		el("span", attrs("id", "resultCount"), text(v.Count)),
		chips,
	)
}

func renderGrid(v ShopView) *html.Node {
	grid := el("div", attrs("id", "grid", "class", "grid"))
	for _, c := range v.Cards {
		grid.AppendChild(el("div", attrs("class", "card", "data-card", c.ID),
			el("a", attrs("href", c.Href), el("img", attrs("src", c.Thumbnail, "alt", c.Name))),
			cardInfo(c),
			el("div", attrs("class", "quickbar"),
				el("a", attrs("class", "btn", "href", c.Href, "data-quick-view", ""), text("Voir")),
				el("form", attrs("method", "post", "action", "/cart/add"),
					hidden("id", c.ID),
					hidden("qty", "1"),
					hidden("return", v.ReturnTo),
					el("button", attrs("class", "btn primary", "type", "submit", "data-quick-add", "", "data-id", c.ID), text("Ajouter")),
				),
			),
		))
	}
	return grid
}

func renderPager(v ShopView) *html.Node {
	form := el("form", attrs("class", "pager", "method", "get", "action", "/shop"))
	for _, key := range sortedKeys(v.State) {
		for _, val := range v.State[key] {
			form.AppendChild(hidden(key, val))
		}
	}
	form.AppendChild(pagerButton("prevPage", "‹ Précédent", v.Prev))
	form.AppendChild(el("span", attrs("id", "pageInfo"), text(v.PageInfo)))
	form.AppendChild(pagerButton("nextPage", "Suivant ›", v.Next))
	return form
}

func pagerButton(id, label string, b PagerButton) *html.Node {
	a := attrs("id", id, "class", "btn", "type", "submit", "name", catalog.ParamPage, "value", strconv.Itoa(b.Page))
	if b.Disabled {
		a = append(a, html.Attribute{Key: "disabled", Val: ""})
	}
	return el("button", a, text(label))
}

func sortedKeys(v url.Values) []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
