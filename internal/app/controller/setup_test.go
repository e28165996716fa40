package controller

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"github.com/ikkim/udonggeum-storefront/internal/app/repository"
	"github.com/ikkim/udonggeum-storefront/internal/app/service"
	"github.com/ikkim/udonggeum-storefront/internal/app/view"
	"github.com/ikkim/udonggeum-storefront/internal/catalog"
	"github.com/ikkim/udonggeum-storefront/internal/db"
	"github.com/ikkim/udonggeum-storefront/internal/middleware"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	products []model.Product
}

func (l *stubLoader) Load(ctx context.Context) ([]model.Product, error) {
	return l.products, nil
}

func (l *stubLoader) Source() string { return "stub" }

func testProducts() []model.Product {
	stock := 3
	products := []model.Product{
		{ID: "ring-1", Name: "Bague Nil", Category: "ring", Metal: "gold", EnamelColor: "blue", Price: 10, Currency: "EUR", Thumbnail: "/img/r1.jpg", Stock: &stock},
		{ID: "bracelet-1", Name: "Bracelet Atlas", Category: "bracelet", Metal: "silver", EnamelColor: "red", Price: 30, Currency: "EUR", Thumbnail: "/img/b1.jpg"},
	}
	for i := 0; i < 14; i++ {
		products = append(products, model.Product{
			ID:       fmt.Sprintf("p%02d", i),
			Name:     fmt.Sprintf("Pendentif %02d", i),
			Category: "pendant",
			Metal:    "gold",
			Price:    float64(40 + i),
			Currency: "EUR",
		})
	}
	return products
}

type testEnv struct {
	router  *gin.Engine
	carts   service.CartService
	visitor string
}

func setupControllerTest(t *testing.T) *testEnv {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	catalogService := service.NewCatalogService(&stubLoader{products: testProducts()}, catalog.NewCollator("fr"))
	require.NoError(t, catalogService.Reload(context.Background()))
	cartService := service.NewCartService(repository.NewGormCartStore(testDB), catalogService, "mt_cart")

	pages := NewPageController(catalogService, cartService, view.NewPriceFormatter("fr"))
	products := NewProductController(catalogService)
	carts := NewCartController(cartService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.LoggingMiddleware(), middleware.VisitorMiddleware(false))

	router.GET("/", middleware.Page(view.PageHome), pages.Home)
	router.GET("/shop", middleware.Page(view.PageShop), pages.Shop)
	router.GET("/product", middleware.Page(view.PageProduct), pages.Product)
	router.GET("/cart", middleware.Page(view.PageCart), pages.Cart)
	router.POST("/cart/add", pages.AddToCart)
	router.POST("/cart/lines/:index", pages.UpdateLine)
	router.POST("/cart/lines/:index/remove", pages.RemoveLine)

	api := router.Group("/api/v1")
	api.GET("/products", products.ListProducts)
	api.GET("/products/:id", products.GetProduct)
	api.GET("/facets", products.GetFacets)
	api.GET("/cart", carts.GetCart)
	api.POST("/cart", carts.AddToCart)
	api.PUT("/cart/:index", carts.UpdateCartLine)
	api.DELETE("/cart/:index", carts.RemoveCartLine)
	api.DELETE("/cart", carts.ClearCart)

	return &testEnv{
		router:  router,
		carts:   cartService,
		visitor: uuid.NewString(),
	}
}

func (e *testEnv) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: e.visitor})
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(target string) *httptest.ResponseRecorder {
	return e.do(http.MethodGet, target, "", "")
}

func (e *testEnv) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	return e.do(http.MethodPost, target, "application/x-www-form-urlencoded", form.Encode())
}

func (e *testEnv) sendJSON(method, target, body string) *httptest.ResponseRecorder {
	return e.do(method, target, "application/json", body)
}
