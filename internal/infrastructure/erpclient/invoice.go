package erpclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rangipos/terminal/internal/domain/pos"
	"github.com/shopspring/decimal"
)

// invoiceItemPayload is one sale line on the wire
type invoiceItemPayload struct {
	ItemCode string          `json:"item_code"`
	ItemName string          `json:"item_name"`
	Qty      int64           `json:"qty"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
	Vatable  bool            `json:"vatable"`
}

// invoicePaymentPayload is the single payment entry on the wire
type invoicePaymentPayload struct {
	ModeOfPayment string          `json:"mode_of_payment"`
	Amount        decimal.Decimal `json:"amount"`
}

// createInvoicePayload is the invoice-creation request body. The payment
// amount must be exactly the client-computed grand total: the backend
// recomputes the total and rejects a mismatch with a 400.
type createInvoicePayload struct {
	Customer     string                  `json:"customer"`
	CustomerType string                  `json:"customer_type"`
	ReferralCode string                  `json:"referral_code,omitempty"`
	POSProfile   string                  `json:"pos_profile"`
	Warehouse    string                  `json:"warehouse,omitempty"`
	Items        []invoiceItemPayload    `json:"items"`
	Payments     []invoicePaymentPayload `json:"payments"`
	NetTotal     decimal.Decimal         `json:"net_total"`
	TaxAmount    decimal.Decimal         `json:"tax_amount"`
	GrandTotal   decimal.Decimal         `json:"grand_total"`
}

// Invoice is the created invoice record returned by the backend
type Invoice struct {
	Name             string          `json:"name"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	TotalQty         int64           `json:"total_qty"`
	Payments         []Payment       `json:"payments"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	PostingDate      string          `json:"posting_date"`
}

// Payment is a settled payment on an invoice
type Payment struct {
	ModeOfPayment string          `json:"mode_of_payment"`
	Amount        decimal.Decimal `json:"amount"`
}

// CreateInvoice submits a sale to the backend. Called exactly once per
// confirmed sale; the idempotency token rides along as a header so the
// backend can recognize a user-driven resubmission.
func (c *Client) CreateInvoice(ctx context.Context, req *pos.SaleRequest) (*Invoice, error) {
	items := make([]invoiceItemPayload, 0, len(req.Lines))
	for _, line := range req.Lines {
		items = append(items, invoiceItemPayload{
			ItemCode: line.ItemCode,
			ItemName: line.ItemName,
			Qty:      line.Quantity,
			Rate:     line.UnitRate,
			Amount:   line.Amount,
			Vatable:  line.Vatable,
		})
	}

	payload := createInvoicePayload{
		Customer:     req.Customer,
		CustomerType: req.CustomerType.String(),
		ReferralCode: req.ReferralCode,
		POSProfile:   req.POSProfileID,
		Warehouse:    req.Warehouse,
		Items:        items,
		Payments: []invoicePaymentPayload{{
			ModeOfPayment: req.Payment.Mode.String(),
			Amount:        req.Payment.Amount.Amount(),
		}},
		NetTotal:   req.Subtotal.Amount(),
		TaxAmount:  req.VAT.Amount(),
		GrandTotal: req.GrandTotal.Amount(),
	}

	headers := map[string]string{
		headerIdempotency: req.IdempotencyToken.String(),
	}

	var invoice Invoice
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/pos/invoices", payload, &invoice, headers); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// RecentInvoices returns the register's latest invoices, newest first
func (c *Client) RecentInvoices(ctx context.Context, limit int) ([]Invoice, error) {
	var result struct {
		Invoices []Invoice `json:"invoices"`
	}
	path := fmt.Sprintf("/api/v1/pos/invoices?limit=%d", limit)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &result, nil); err != nil {
		return nil, err
	}
	return result.Invoices, nil
}

// QueueReceipt asks the backend to generate and dispatch the receipt for an
// invoice. Best-effort: receipt generation is an opaque collaborator.
func (c *Client) QueueReceipt(ctx context.Context, invoiceID string) error {
	path := fmt.Sprintf("/api/v1/pos/invoices/%s/receipt", invoiceID)
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, nil)
}
