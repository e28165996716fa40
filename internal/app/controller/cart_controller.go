package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"github.com/ikkim/udonggeum-storefront/internal/app/service"
	appErrors "github.com/ikkim/udonggeum-storefront/internal/errors"
	"github.com/ikkim/udonggeum-storefront/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	// Quantity below 1 (or omitted) adds a single unit.
	Quantity int `json:"qty"`
}

type UpdateCartLineRequest struct {
	Quantity int `json:"qty"`
}

func cartResponse(cart *service.Cart) gin.H {
	lines := cart.Lines
	if lines == nil {
		lines = []model.CartLine{}
	}
	return gin.H{
		"lines": lines,
		"count": cart.TotalQuantity(),
		"total": cart.Total(),
	}
}

// lineIndex reads the :index path parameter
func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		appErrors.BadRequest(c, appErrors.ValidationInvalidIndex, "Index de ligne invalide")
		return 0, false
	}
	return index, true
}

// GetCart returns the visitor's cart
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	visitorID, _ := middleware.GetVisitorID(c)

	cart, err := ctrl.cartService.Load(c.Request.Context(), visitorID)
	if err != nil {
		log.Error("Failed to fetch cart", err, map[string]interface{}{
			"visitor_id": visitorID,
		})
		appErrors.RespondWithError(c, http.StatusInternalServerError, appErrors.CartStoreFailed, "Impossible de lire le panier")
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// AddToCart adds a product or raises the quantity of its line
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	visitorID, _ := middleware.GetVisitorID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"visitor_id": visitorID,
			"error":      err.Error(),
		})
		appErrors.BadRequest(c, appErrors.ValidationInvalidInput, "Requête invalide")
		return
	}

	cart, err := ctrl.cartService.Add(c.Request.Context(), visitorID, req.ProductID, req.Quantity)
	if err != nil {
		appErrors.RespondWithParsedError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// UpdateCartLine sets the quantity of one line
// PUT /api/v1/cart/:index
func (ctrl *CartController) UpdateCartLine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	visitorID, _ := middleware.GetVisitorID(c)

	index, ok := lineIndex(c)
	if !ok {
		return
	}

	var req UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid cart line update", map[string]interface{}{
			"visitor_id": visitorID,
			"error":      err.Error(),
		})
		appErrors.BadRequest(c, appErrors.ValidationInvalidInput, "Requête invalide")
		return
	}

	cart, err := ctrl.cartService.SetQuantity(c.Request.Context(), visitorID, index, req.Quantity)
	if err != nil {
		appErrors.RespondWithParsedError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// RemoveCartLine drops one line
// DELETE /api/v1/cart/:index
func (ctrl *CartController) RemoveCartLine(c *gin.Context) {
	visitorID, _ := middleware.GetVisitorID(c)

	index, ok := lineIndex(c)
	if !ok {
		return
	}

	cart, err := ctrl.cartService.Remove(c.Request.Context(), visitorID, index)
	if err != nil {
		appErrors.RespondWithParsedError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// ClearCart empties the visitor's cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	visitorID, _ := middleware.GetVisitorID(c)

	if err := ctrl.cartService.Clear(c.Request.Context(), visitorID); err != nil {
		log.Error("Failed to clear cart", err, map[string]interface{}{
			"visitor_id": visitorID,
		})
		appErrors.RespondWithError(c, http.StatusInternalServerError, appErrors.CartStoreFailed, "Impossible de vider le panier")
		return
	}

	c.JSON(http.StatusOK, cartResponse(&service.Cart{}))
}
