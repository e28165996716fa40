package view

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"github.com/ikkim/udonggeum-storefront/internal/app/service"
	"github.com/ikkim/udonggeum-storefront/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var prices = NewPriceFormatter("fr")

func stock(n int) *int { return &n }

func TestPriceFormatter(t *testing.T) {
	eur := prices.Format(12.5, "EUR")
	assert.Contains(t, eur, "12,50")
	assert.True(t, strings.HasSuffix(eur, "€"), eur)

	assert.Equal(t, "12.50 €", prices.Format(12.5, "NOPE"))
	assert.Equal(t, "3.00 €", prices.Format(3, ""))
}

func TestDocument_CartCountAndPageTag(t *testing.T) {
	doc := Document(PageContext{Page: PageCart, CartCount: 4})

	assert.Equal(t, "4", Text(Find(doc, "data-cart-count")))
	body := Find(doc, "data-page")
	page, _ := Attr(body, "data-page")
	assert.Equal(t, "cart", page)

	untagged := Document(PageContext{CartCount: 2})
	assert.Nil(t, Find(untagged, "data-page"))
	assert.Equal(t, "2", Text(Find(untagged, "data-cart-count")))
}

func TestRenderHome(t *testing.T) {
	products := []model.Product{
		{ID: "a b", Name: "Bague Lotus", Category: "ring", Price: 10, Currency: "EUR", Thumbnail: "img/a.jpg"},
		{ID: "c", Name: "Jonc", Category: "bracelet", Price: 20, Currency: "EUR"},
	}
	doc := RenderHome(PageContext{Page: PageHome}, NewHomeView(products, prices))

	cards := FindAll(ByID(doc, "homeGrid"), "data-card")
	require.Len(t, cards, 2)
	href, _ := Attr(cards[0], "href")
	assert.Equal(t, "/product?id=a+b", href)
	assert.Contains(t, Text(cards[0]), "Bague Lotus")
}

func shopProducts(n int) []model.Product {
	out := make([]model.Product, n)
	for i := range out {
		out[i] = model.Product{
			ID:       fmt.Sprintf("p%02d", i),
			Name:     fmt.Sprintf("Bijou %02d", i),
			Category: []string{"ring", "bracelet"}[i%2],
			Metal:    "gold",
			Price:    float64(10 + i),
			Currency: "EUR",
		}
	}
	return out
}

func TestRenderShop_GridMetaAndPager(t *testing.T) {
	products := shopProducts(30)
	f := catalog.NewFilterState()
	f.Category = catalog.NewSelection("ring")
	f.MinPrice = new(float64)
	*f.MinPrice = 12
	res := catalog.Apply(products, f, nil)

	doc := RenderShop(PageContext{Page: PageShop}, NewShopView(res, catalog.CollectFacets(products), prices))

	// rings are the even ids 00..28; the inclusive bound of 12 drops only p00
	assert.Equal(t, "14 résultats", Text(ByID(doc, "resultCount")))
	assert.Len(t, FindAll(ByID(doc, "grid"), "data-card"), 12)
	assert.Equal(t, "Page 1 / 2", Text(ByID(doc, "pageInfo")))

	_, prevDisabled := Attr(ByID(doc, "prevPage"), "disabled")
	_, nextDisabled := Attr(ByID(doc, "nextPage"), "disabled")
	assert.True(t, prevDisabled)
	assert.False(t, nextDisabled)

	chips := FindAll(ByID(doc, "activeChips"), "data-chip-remove")
	require.Len(t, chips, 2)
	href, _ := Attr(chips[0], "href")
	assert.Equal(t, "/shop?min=12", href)
	href, _ = Attr(chips[1], "href")
	assert.Equal(t, "/shop?category=ring", href)

	var checked []string
	for _, cb := range FindAll(ByID(doc, "filters"), "data-filter") {
		if _, ok := Attr(cb, "checked"); ok {
			v, _ := Attr(cb, "value")
			checked = append(checked, v)
		}
	}
	assert.Equal(t, []string{"ring"}, checked)
}

func TestRenderShop_LastPageDisablesNext(t *testing.T) {
	products := shopProducts(13)
	res := catalog.Apply(products, catalog.NewFilterState().WithPage(2), nil)

	doc := RenderShop(PageContext{Page: PageShop}, NewShopView(res, catalog.CollectFacets(products), prices))

	assert.Equal(t, "Page 2 / 2", Text(ByID(doc, "pageInfo")))
	_, nextDisabled := Attr(ByID(doc, "nextPage"), "disabled")
	assert.True(t, nextDisabled)
	_, prevDisabled := Attr(ByID(doc, "prevPage"), "disabled")
	assert.False(t, prevDisabled)
	assert.Len(t, FindAll(ByID(doc, "grid"), "data-card"), 1)
}

func TestRenderShop_NoResults(t *testing.T) {
	products := shopProducts(5)
	f := catalog.NewFilterState()
	f.Search = "introuvable"
	res := catalog.Apply(products, f, nil)

	doc := RenderShop(PageContext{Page: PageShop}, NewShopView(res, catalog.CollectFacets(products), prices))

	assert.Equal(t, "0 résultat", Text(ByID(doc, "resultCount")))
	assert.Empty(t, FindAll(ByID(doc, "grid"), "data-card"))
	assert.Equal(t, "Page 1 / 1", Text(ByID(doc, "pageInfo")))
	_, nextDisabled := Attr(ByID(doc, "nextPage"), "disabled")
	assert.True(t, nextDisabled)
}

func TestRenderProduct(t *testing.T) {
	p := &model.Product{
		ID: "a", Name: "Bague <Lotus>", Category: "ring", Metal: "gold", EnamelColor: "blue",
		Price: 10, Currency: "EUR", Images: []string{"1.jpg", "2.jpg"}, Stock: stock(3), Description: "Émail",
	}
	doc := RenderProduct(PageContext{Page: PageProduct}, NewProductView(p, prices))

	assert.Equal(t, "Bague <Lotus>", Text(Find(doc, "data-name")))
	assert.Equal(t, "Bague <Lotus>", Text(Find(doc, "data-breadcrumb-name")))
	assert.Len(t, FindAll(Find(doc, "data-gallery"), "src"), 2)
	assert.Contains(t, Text(Find(doc, "data-meta")), "Stock3")

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc))
	assert.Contains(t, buf.String(), "Bague &lt;Lotus&gt;")
	assert.NotContains(t, buf.String(), "<Lotus>")
}

func TestRenderProduct_Unmatched(t *testing.T) {
	doc := RenderProduct(PageContext{Page: PageProduct, CartCount: 1}, NewProductView(nil, prices))

	assert.Nil(t, Find(doc, "data-name"))
	assert.Equal(t, "1", Text(Find(doc, "data-cart-count")))
}

func TestRenderCart(t *testing.T) {
	var cart service.Cart
	cart.Add(model.Product{ID: "a", Name: "Bague", Price: 10, Currency: "EUR"}, 2)
	cart.Add(model.Product{ID: "b", Name: "Jonc", Price: 20, Currency: "EUR"}, 1)

	doc := RenderCart(PageContext{Page: PageCart, CartCount: cart.TotalQuantity()}, NewCartView(&cart, prices))

	rows := FindAll(Find(doc, "data-cart"), "data-line")
	require.Len(t, rows, 2)

	qty, _ := Attr(Find(rows[0], "data-qty-input"), "value")
	assert.Equal(t, "2", qty)
	assert.Contains(t, Text(Find(rows[0], "data-line-total")), "20,00")
	assert.Contains(t, Text(Find(doc, "data-total")), "40,00")
	assert.Equal(t, "3", Text(Find(doc, "data-cart-count")))

	forms := FindAll(rows[1], "action")
	require.Len(t, forms, 2)
	action, _ := Attr(forms[1], "action")
	assert.Equal(t, "/cart/lines/1/remove", action)
}

func TestRender_SerializesDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Document(PageContext{Page: PageHome})))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"), out)
	assert.Contains(t, out, `data-page="home"`)

	_, err := html.Parse(strings.NewReader(out))
	assert.NoError(t, err)
}
