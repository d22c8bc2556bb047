package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rangipos/terminal/internal/infrastructure/erpclient"
)

// MpesaGateway is the STK push slice of the ERP client
type MpesaGateway interface {
	InitiateSTKPush(ctx context.Context, req erpclient.STKPushRequest) (*erpclient.STKPushResponse, error)
	GetSTKStatus(ctx context.Context, checkoutRequestID string) (*erpclient.STKStatus, error)
}

// PaymentHandler passes M-Pesa STK pushes through to the backend. The
// payment protocol lives server-side; the terminal initiates and polls.
type PaymentHandler struct {
	BaseHandler
	mpesa MpesaGateway
}

// NewPaymentHandler creates a payment handler
func NewPaymentHandler(mpesa MpesaGateway) *PaymentHandler {
	return &PaymentHandler{mpesa: mpesa}
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	mpesa := rg.Group("/payments/mpesa")
	{
		mpesa.POST("/stk-push", h.InitiateSTKPush)
		mpesa.GET("/stk-push/:id", h.GetSTKStatus)
	}
}

// STKPushRequest asks for a payment prompt on the customer's phone
type STKPushRequest struct {
	Phone     string  `json:"phone" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	InvoiceID string  `json:"invoice_id" binding:"required"`
}

// InitiateSTKPush starts an M-Pesa payment prompt
// POST /api/v1/payments/mpesa/stk-push
func (h *PaymentHandler) InitiateSTKPush(c *gin.Context) {
	var req STKPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.mpesa.InitiateSTKPush(c.Request.Context(), erpclient.STKPushRequest{
		Phone:     req.Phone,
		Amount:    decimal.NewFromFloat(req.Amount),
		InvoiceID: req.InvoiceID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetSTKStatus polls the state of an earlier push
// GET /api/v1/payments/mpesa/stk-push/:id
func (h *PaymentHandler) GetSTKStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.BadRequest(c, "checkout request id is required")
		return
	}

	status, err := h.mpesa.GetSTKStatus(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}
