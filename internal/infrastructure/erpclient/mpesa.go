package erpclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// STKPushRequest asks the backend to fire an M-Pesa STK push to the
// customer's phone for the given invoice. The payment protocol itself lives
// server-side; the terminal only initiates and polls.
type STKPushRequest struct {
	Phone     string          `json:"phone"`
	Amount    decimal.Decimal `json:"amount"`
	InvoiceID string          `json:"invoice_id"`
}

// STKPushResponse identifies the in-flight push for status polling
type STKPushResponse struct {
	CheckoutRequestID string `json:"checkout_request_id"`
	ResponseCode      string `json:"response_code"`
	CustomerMessage   string `json:"customer_message"`
}

// STKStatus is the current state of an STK push: Pending, Success or Failed
type STKStatus struct {
	CheckoutRequestID string `json:"checkout_request_id"`
	Status            string `json:"status"`
	ResultDesc        string `json:"result_desc"`
}

// InitiateSTKPush starts an M-Pesa payment prompt on the customer's phone
func (c *Client) InitiateSTKPush(ctx context.Context, req STKPushRequest) (*STKPushResponse, error) {
	var resp STKPushResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/pos/mpesa/stk-push", req, &resp, nil); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSTKStatus polls the state of an earlier push
func (c *Client) GetSTKStatus(ctx context.Context, checkoutRequestID string) (*STKStatus, error) {
	var status STKStatus
	path := fmt.Sprintf("/api/v1/pos/mpesa/stk-push/%s", checkoutRequestID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &status, nil); err != nil {
		return nil, err
	}
	return &status, nil
}
