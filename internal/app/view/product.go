package view

import (
	"strconv"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"golang.org/x/net/html"
)

type ProductView struct {
	Found       bool
	ID          string
	Name        string
	Price       string
	Description string
	Category    string
	Metal       string
	EnamelColor string
	Stock       string
	Gallery     []string
}

// NewProductView maps p; a nil product yields a view with Found unset.
func NewProductView(p *model.Product, prices PriceFormatter) ProductView {
	if p == nil {
		return ProductView{}
	}
	stock := "—"
	if p.Stock != nil {
		stock = strconv.Itoa(*p.Stock)
	}
	return ProductView{
		Found:       true,
		ID:          p.ID,
		Name:        p.Name,
		Price:       prices.Format(p.Price, p.Currency),
		Description: p.Description,
		Category:    p.Category,
		Metal:       p.Metal,
		EnamelColor: p.EnamelColor,
		Stock:       stock,
		Gallery:     p.Gallery(),
	}
}

// RenderProduct paints the detail page. An unmatched product renders the
// shell and nothing else.
func RenderProduct(ctx PageContext, v ProductView) *html.Node {
	if !v.Found {
		return Document(ctx)
	}

	gallery := el("div", attrs("class", "gallery", "data-gallery", ""))
	for _, src := range v.Gallery {
		gallery.AppendChild(el("img", attrs("src", src, "alt", v.Name)))
	}

	meta := el("table", attrs("class", "meta", "data-meta", ""),
		metaRow("Catégorie", v.Category),
		metaRow("Métal", v.Metal),
		metaRow("Émail", v.EnamelColor),
		metaRow("Stock", v.Stock),
	)

	return Document(ctx,
		el("nav", attrs("class", "breadcrumb"),
			el("a", attrs("href", "/shop"), text("Boutique")),
			text(" / "),
			el("span", attrs("data-breadcrumb-name", ""), text(v.Name)),
		),
		el("article", attrs("class", "pdp", "data-product", v.ID),
			gallery,
			el("div", attrs("class", "details"),
				el("h1", attrs("class", "kufi", "data-name", ""), text(v.Name)),
				el("div", attrs("class", "price", "data-price", ""), text(v.Price)),
				el("p", attrs("data-desc", ""), text(v.Description)),
				meta,
				el("form", attrs("method", "post", "action", "/cart/add"),
					hidden("id", v.ID),
					hidden("return", ProductHref(v.ID)),
					el("input", attrs("type", "number", "name", "qty", "min", "1", "value", "1", "data-qty", "")),
					el("button", attrs("class", "btn primary", "type", "submit", "data-add", ""), text("Ajouter au panier")),
				),
			),
		),
	)
}

func metaRow(label, value string) *html.Node {
	return el("tr", nil, el("th", nil, text(label)), el("td", nil, text(value)))
}
