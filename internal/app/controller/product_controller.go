package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/udonggeum-storefront/internal/app/service"
	"github.com/ikkim/udonggeum-storefront/internal/catalog"
	appErrors "github.com/ikkim/udonggeum-storefront/internal/errors"
	"github.com/ikkim/udonggeum-storefront/internal/middleware"
)

type ProductController struct {
	catalogService service.CatalogService
}

func NewProductController(catalogService service.CatalogService) *ProductController {
	return &ProductController{
		catalogService: catalogService,
	}
}

// ListProducts runs the browse pipeline over the shop query parameters
// GET /api/v1/products
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	state := catalog.ParseQuery(c.Request.URL.Query())
	res := ctrl.catalogService.Browse(state)

	log.Info("Products browsed", map[string]interface{}{
		"total": res.Total,
		"page":  res.Page,
		"sort":  state.Sort,
	})

	c.JSON(http.StatusOK, gin.H{
		"products":    res.Items,
		"total":       res.Total,
		"count_label": catalog.CountLabel(res.Total),
		"page":        res.Page,
		"total_pages": res.TotalPages,
		"per_page":    catalog.PerPage,
		"chips":       res.Chips,
		"query":       res.State.Encode(),
	})
}

// GetProduct returns a product by ID
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")
	product, err := ctrl.catalogService.FindByID(id)
	if err != nil {
		log.Warn("Product lookup failed", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		appErrors.RespondWithParsedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// GetFacets returns the distinct facet values and the catalog price range
// GET /api/v1/facets
func (ctrl *ProductController) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"facets": ctrl.catalogService.Facets(),
	})
}
