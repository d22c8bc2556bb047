package handler

import (
	"github.com/gin-gonic/gin"

	appos "github.com/rangipos/terminal/internal/application/pos"
	"github.com/rangipos/terminal/internal/interfaces/http/dto"
)

// CartHandler exposes the register's single transaction context
type CartHandler struct {
	BaseHandler
	cart *appos.CartService
}

// NewCartHandler creates a cart handler
func NewCartHandler(cart *appos.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Get)
		cart.DELETE("", h.Clear)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items", h.UpdateQuantity)
		cart.DELETE("/items/:code", h.RemoveItem)
		cart.PUT("/customer", h.SetCustomer)
		cart.PUT("/payment-mode", h.SetPaymentMode)
	}
}

// Get returns the current cart
// GET /api/v1/cart
func (h *CartHandler) Get(c *gin.Context) {
	h.Success(c, h.cart.View())
}

// AddItem adds an item or increments its quantity
// POST /api/v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	view, err := h.cart.AddItem(req.ItemCode, req.ItemName, req.UnitRate)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// UpdateQuantity adjusts a line's quantity by a signed delta
// PATCH /api/v1/cart/items
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	view, err := h.cart.UpdateQuantity(req.ItemCode, req.Delta)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// RemoveItem removes a line entirely
// DELETE /api/v1/cart/items/:code
func (h *CartHandler) RemoveItem(c *gin.Context) {
	view, err := h.cart.RemoveItem(c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// SetCustomer selects the customer for the current transaction
// PUT /api/v1/cart/customer
func (h *CartHandler) SetCustomer(c *gin.Context) {
	var req dto.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	view, err := h.cart.SetCustomer(req.Customer, req.CustomerType, req.ReferralCode)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// SetPaymentMode selects how the sale will be settled
// PUT /api/v1/cart/payment-mode
func (h *CartHandler) SetPaymentMode(c *gin.Context) {
	var req dto.SetPaymentModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	view, err := h.cart.SetPaymentMode(req.Mode)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// Clear resets the whole transaction context in one step
// DELETE /api/v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.Success(c, h.cart.ResetTransaction())
}
