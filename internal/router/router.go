package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/udonggeum-storefront/config"
	"github.com/ikkim/udonggeum-storefront/internal/app/controller"
	"github.com/ikkim/udonggeum-storefront/internal/app/view"
	"github.com/ikkim/udonggeum-storefront/internal/middleware"
)

type Router struct {
	pageController    *controller.PageController
	productController *controller.ProductController
	cartController    *controller.CartController
	rateLimiter       *middleware.RateLimiter
	config            *config.Config
}

func NewRouter(
	pageController *controller.PageController,
	productController *controller.ProductController,
	cartController *controller.CartController,
	rateLimiter *middleware.RateLimiter,
	cfg *config.Config,
) *Router {
	return &Router{
		pageController:    pageController,
		productController: productController,
		cartController:    cartController,
		rateLimiter:       rateLimiter,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Storefront is running",
		})
	})

	router.Static("/assets", r.config.Server.AssetsDir)

	shop := router.Group("")
	shop.Use(middleware.VisitorMiddleware(r.config.Server.Environment == "production"))
	if r.rateLimiter != nil {
		shop.Use(r.rateLimiter.Middleware())
	}
	{
		shop.GET("/", middleware.Page(view.PageHome), r.pageController.Home)
		shop.GET("/shop", middleware.Page(view.PageShop), r.pageController.Shop)
		shop.GET("/product", middleware.Page(view.PageProduct), r.pageController.Product)
		shop.GET("/cart", middleware.Page(view.PageCart), r.pageController.Cart)

		shop.POST("/cart/add", r.pageController.AddToCart)
		shop.POST("/cart/lines/:index", r.pageController.UpdateLine)
		shop.POST("/cart/lines/:index/remove", r.pageController.RemoveLine)
	}

	v1 := shop.Group("/api/v1")
	v1.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	{
		// preflight requests are answered by corsMiddleware
		v1.OPTIONS("/*path", func(c *gin.Context) {})

		products := v1.Group("/products")
		{
			products.GET("", r.productController.ListProducts)
			products.GET("/:id", r.productController.GetProduct)
		}

		v1.GET("/facets", r.productController.GetFacets)

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.DELETE("", r.cartController.ClearCart)
			cart.PUT("/:index", r.cartController.UpdateCartLine)
			cart.DELETE("/:index", r.cartController.RemoveCartLine)
		}
	}

	return router
}

// corsMiddleware answers cross-origin API calls from the configured origins.
// With no origins configured the API stays same-origin only.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
