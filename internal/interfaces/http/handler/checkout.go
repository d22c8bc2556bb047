package handler

import (
	"github.com/gin-gonic/gin"

	appos "github.com/rangipos/terminal/internal/application/pos"
)

// CheckoutHandler drives the sale submission flow
type CheckoutHandler struct {
	BaseHandler
	checkout *appos.CheckoutService
}

// NewCheckoutHandler creates a checkout handler
func NewCheckoutHandler(checkout *appos.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	checkout := rg.Group("/checkout")
	{
		checkout.POST("", h.Submit)
		checkout.GET("/state", h.State)
	}
}

// Submit runs one checkout attempt
// POST /api/v1/checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	result, err := h.checkout.Submit(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// State returns the current checkout phase
// GET /api/v1/checkout/state
func (h *CheckoutHandler) State(c *gin.Context) {
	h.Success(c, gin.H{"state": h.checkout.State()})
}
