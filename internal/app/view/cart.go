package view

import (
	"fmt"
	"strconv"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"github.com/ikkim/udonggeum-storefront/internal/app/service"
	"golang.org/x/net/html"
)

type CartRowView struct {
	Index     int
	Name      string
	Thumbnail string
	UnitPrice string
	LineTotal string
	Qty       int
}

type CartView struct {
	Rows  []CartRowView
	Total string
}

func NewCartView(cart *service.Cart, prices PriceFormatter) CartView {
	v := CartView{Total: prices.Format(cart.Total(), model.DefaultCurrency)}
	for i, l := range cart.Lines {
		v.Rows = append(v.Rows, CartRowView{
			Index:     i,
			Name:      l.Name,
			Thumbnail: l.Thumbnail,
			UnitPrice: prices.Format(l.Price, l.Currency),
			LineTotal: prices.Format(l.Subtotal(), l.Currency),
			Qty:       l.Qty,
		})
	}
	return v
}

// RenderCart paints one editable row per line and the grand total.
func RenderCart(ctx PageContext, v CartView) *html.Node {
	list := el("div", attrs("class", "cart", "data-cart", ""))
	for _, r := range v.Rows {
		list.AppendChild(cartRow(r))
	}

	return Document(ctx,
		el("h1", attrs("class", "kufi"), text("Panier")),
		list,
		el("div", attrs("class", "total"),
			text("Total : "),
			el("strong", attrs("data-total", ""), text(v.Total)),
		),
	)
}

func cartRow(r CartRowView) *html.Node {
	action := fmt.Sprintf("/cart/lines/%d", r.Index)
	return el("div", attrs("class", "cart-item", "data-line", strconv.Itoa(r.Index)),
		el("img", attrs("src", r.Thumbnail, "alt", r.Name)),
		el("div", nil,
			el("div", attrs("class", "kufi"), text(r.Name)),
			el("form", attrs("class", "muted", "method", "post", "action", action),
				text(r.UnitPrice+" × "),
				el("input", attrs("type", "number", "name", "qty", "min", "1", "value", strconv.Itoa(r.Qty), "data-qty-input", "")),
				el("button", attrs("class", "btn", "type", "submit"), text("OK")),
			),
		),
		el("div", nil,
			el("div", attrs("data-line-total", ""), text(r.LineTotal)),
			el("form", attrs("method", "post", "action", action+"/remove"),
				el("button", attrs("class", "btn", "type", "submit", "data-remove", "", "aria-label", "Retirer"), text("×")),
			),
		),
	)
}
