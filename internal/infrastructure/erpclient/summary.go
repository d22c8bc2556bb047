package erpclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// PaymentModeTotals breaks the day's sales down by settlement mode
type PaymentModeTotals struct {
	Cash  decimal.Decimal `json:"cash"`
	Mpesa decimal.Decimal `json:"mpesa"`
	Bank  decimal.Decimal `json:"bank"`
	Total decimal.Decimal `json:"total"`
}

// DailySummary is the backend's aggregate for one trading day. It feeds the
// dashboard and supplies the cash-sales input to reconciliation.
type DailySummary struct {
	TotalSales        decimal.Decimal            `json:"total_sales"`
	TotalTransactions int64                      `json:"total_transactions"`
	TotalCommission   decimal.Decimal            `json:"total_commission"`
	ByPaymentMode     PaymentModeTotals          `json:"by_payment_mode"`
	ByCustomerType    map[string]decimal.Decimal `json:"by_customer_type"`
}

// GetDailySummary fetches the aggregate for the given calendar day
// (formatted as 2006-01-02).
func (c *Client) GetDailySummary(ctx context.Context, date string) (*DailySummary, error) {
	var summary DailySummary
	path := fmt.Sprintf("/api/v1/pos/daily-summary?date=%s", date)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &summary, nil); err != nil {
		return nil, err
	}
	return &summary, nil
}
