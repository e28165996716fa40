package controller

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/udonggeum-storefront/internal/app/service"
	"github.com/ikkim/udonggeum-storefront/internal/app/view"
	"github.com/ikkim/udonggeum-storefront/internal/catalog"
	appErrors "github.com/ikkim/udonggeum-storefront/internal/errors"
	"github.com/ikkim/udonggeum-storefront/internal/middleware"
	"golang.org/x/net/html"
)

// PageController serves the server-rendered storefront pages and the form
// posts that drive the cart from them.
type PageController struct {
	catalogService service.CatalogService
	cartService    service.CartService
	prices         view.PriceFormatter
}

func NewPageController(catalogService service.CatalogService, cartService service.CartService, prices view.PriceFormatter) *PageController {
	return &PageController{
		catalogService: catalogService,
		cartService:    cartService,
		prices:         prices,
	}
}

// loadCart returns the visitor's cart. A store failure is logged and an
// empty cart is used so the page still renders.
func (ctrl *PageController) loadCart(c *gin.Context) *service.Cart {
	log := middleware.GetLoggerFromContext(c)
	visitorID, _ := middleware.GetVisitorID(c)

	cart, err := ctrl.cartService.Load(c.Request.Context(), visitorID)
	if err != nil {
		log.Error("Failed to load cart for page", err, map[string]interface{}{
			"visitor_id": visitorID,
		})
		return &service.Cart{}
	}
	return cart
}

func (ctrl *PageController) pageContext(c *gin.Context, title string, cart *service.Cart) view.PageContext {
	return view.PageContext{
		Page:      middleware.GetPage(c),
		Title:     title,
		CartCount: cart.TotalQuantity(),
		Prices:    ctrl.prices,
	}
}

func (ctrl *PageController) render(c *gin.Context, status int, doc *html.Node) {
	var buf bytes.Buffer
	if err := view.Render(&buf, doc); err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to render page", err, nil)
		appErrors.InternalError(c, "")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// Home renders the highlight grid
// GET /
func (ctrl *PageController) Home(c *gin.Context) {
	cart := ctrl.loadCart(c)
	v := view.NewHomeView(ctrl.catalogService.Highlights(), ctrl.prices)
	ctrl.render(c, http.StatusOK, view.RenderHome(ctrl.pageContext(c, "Maison Émail", cart), v))
}

// Shop renders the filtered, sorted and paginated catalog
// GET /shop
func (ctrl *PageController) Shop(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	state := catalog.ParseQuery(c.Request.URL.Query())
	res := ctrl.catalogService.Browse(state)

	log.Debug("Shop browsed", map[string]interface{}{
		"query": state.Encode(),
		"total": res.Total,
		"page":  res.Page,
	})

	cart := ctrl.loadCart(c)
	v := view.NewShopView(res, ctrl.catalogService.Facets(), ctrl.prices)
	ctrl.render(c, http.StatusOK, view.RenderShop(ctrl.pageContext(c, "Boutique", cart), v))
}

// Product renders the detail page of ?id=. An unknown id renders the bare
// shell with 404.
// GET /product
func (ctrl *PageController) Product(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Query("id")
	cart := ctrl.loadCart(c)

	product, err := ctrl.catalogService.FindByID(id)
	if err != nil {
		info := appErrors.ParseError(err)
		log.Warn("Product page not matched", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		ctrl.render(c, info.Status, view.RenderProduct(ctrl.pageContext(c, "", cart), view.ProductView{}))
		return
	}

	v := view.NewProductView(product, ctrl.prices)
	ctrl.render(c, http.StatusOK, view.RenderProduct(ctrl.pageContext(c, product.Name, cart), v))
}

// Cart renders the editable line list
// GET /cart
func (ctrl *PageController) Cart(c *gin.Context) {
	cart := ctrl.loadCart(c)
	v := view.NewCartView(cart, ctrl.prices)
	ctrl.render(c, http.StatusOK, view.RenderCart(ctrl.pageContext(c, "Panier", cart), v))
}

// AddToCart handles the add forms of the shop grid and the detail page
// POST /cart/add
func (ctrl *PageController) AddToCart(c *gin.Context) {
	visitorID, _ := middleware.GetVisitorID(c)

	productID := c.PostForm("id")
	qty := service.ParseQuantity(c.PostForm("qty"))

	if _, err := ctrl.cartService.Add(c.Request.Context(), visitorID, productID, qty); err != nil {
		appErrors.RespondWithParsedError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, safeReturn(c.PostForm("return"), view.ProductHref(productID)))
}

// UpdateLine sets a line quantity from the cart page
// POST /cart/lines/:index
func (ctrl *PageController) UpdateLine(c *gin.Context) {
	visitorID, _ := middleware.GetVisitorID(c)

	index, ok := lineIndex(c)
	if !ok {
		return
	}
	qty := service.ParseQuantity(c.PostForm("qty"))

	if _, err := ctrl.cartService.SetQuantity(c.Request.Context(), visitorID, index, qty); err != nil {
		if !errors.Is(err, service.ErrCartLineNotFound) {
			appErrors.RespondWithParsedError(c, err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// RemoveLine drops a line from the cart page
// POST /cart/lines/:index/remove
func (ctrl *PageController) RemoveLine(c *gin.Context) {
	visitorID, _ := middleware.GetVisitorID(c)

	index, ok := lineIndex(c)
	if !ok {
		return
	}

	if _, err := ctrl.cartService.Remove(c.Request.Context(), visitorID, index); err != nil {
		if !errors.Is(err, service.ErrCartLineNotFound) {
			appErrors.RespondWithParsedError(c, err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/cart")
}

// safeReturn accepts only same-site relative paths.
func safeReturn(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return u.RequestURI()
}
