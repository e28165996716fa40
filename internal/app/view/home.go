package view

import (
	"net/url"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"golang.org/x/net/html"
)

// CardView is one product tile.
type CardView struct {
	ID        string
	Name      string
	Category  string
	Price     string
	Thumbnail string
	Href      string
}

func NewCardView(p model.Product, prices PriceFormatter) CardView {
	return CardView{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     prices.Format(p.Price, p.Currency),
		Thumbnail: p.Thumbnail,
		Href:      ProductHref(p.ID),
	}
}

// ProductHref addresses the detail page of a product.
func ProductHref(id string) string {
	return "/product?" + url.Values{"id": {id}}.Encode()
}

func cardInfo(c CardView) *html.Node {
	return el("div", attrs("class", "info"),
		el("div", attrs("class", "muted"), text(c.Category)),
		el("div", attrs("class", "kufi"), text(c.Name)),
		el("div", attrs("class", "price"), text(c.Price)),
	)
}

type HomeView struct {
	Cards []CardView
}

func NewHomeView(highlights []model.Product, prices PriceFormatter) HomeView {
	v := HomeView{Cards: make([]CardView, 0, len(highlights))}
	for _, p := range highlights {
		v.Cards = append(v.Cards, NewCardView(p, prices))
	}
	return v
}

// RenderHome paints the highlight grid as plain link cards.
func RenderHome(ctx PageContext, v HomeView) *html.Node {
	grid := el("div", attrs("id", "homeGrid", "class", "grid"))
	for _, c := range v.Cards {
		grid.AppendChild(el("a", attrs("class", "card", "href", c.Href, "data-card", c.ID),
			el("img", attrs("src", c.Thumbnail, "alt", c.Name)),
			cardInfo(c),
		))
	}

	return Document(ctx,
		el("section", attrs("class", "hero"),
			el("h1", attrs("class", "kufi"), text("Nouveautés")),
			grid,
		),
	)
}
