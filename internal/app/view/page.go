package view

import (
	"strconv"

	"golang.org/x/net/html"
)

// Page is the page-type tag that selects a renderer and its initialization
// path.
type Page string

const (
	PageNone    Page = ""
	PageHome    Page = "home"
	PageShop    Page = "shop"
	PageProduct Page = "pdp"
	PageCart    Page = "cart"
)

// PageContext carries what every renderer needs besides its own view model.
type PageContext struct {
	Page      Page
	Title     string
	CartCount int
	Prices    PriceFormatter
}

// Document wraps content in the storefront shell. The shell always shows the
// cart-count indicator; data-page is set only for tagged pages.
func Document(ctx PageContext, content ...*html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	title := ctx.Title
	if title == "" {
		title = "Maison Émail"
	}

	head := el("head", nil,
		el("meta", attrs("charset", "utf-8")),
		el("meta", attrs("name", "viewport", "content", "width=device-width, initial-scale=1")),
		el("title", nil, text(title)),
		el("link", attrs("rel", "stylesheet", "href", "/assets/styles.css")),
	)

	var bodyAttrs []html.Attribute
	if ctx.Page != PageNone {
		bodyAttrs = attrs("data-page", string(ctx.Page))
	}

	header := el("header", attrs("class", "site-header"),
		el("nav", nil,
			el("a", attrs("href", "/", "class", "kufi"), text("Accueil")),
			el("a", attrs("href", "/shop"), text("Boutique")),
			el("a", attrs("href", "/cart"),
				text("Panier ("),
				el("span", attrs("data-cart-count", ""), text(strconv.Itoa(ctx.CartCount))),
				text(")"),
			),
		),
	)

	body := el("body", bodyAttrs, header, el("main", nil, content...))
	doc.AppendChild(el("html", attrs("lang", "fr"), head, body))
	return doc
}
