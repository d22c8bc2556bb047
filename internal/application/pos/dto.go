package pos

import (
	"time"

	"github.com/rangipos/terminal/internal/domain/pos"
)

// CartLineView is a cart line in API responses
type CartLineView struct {
	ItemCode  string  `json:"item_code"`
	ItemName  string  `json:"item_name"`
	Quantity  int64   `json:"quantity"`
	UnitRate  float64 `json:"unit_rate"`
	LineTotal float64 `json:"line_total"`
}

// CartView is the full transaction context in API responses
type CartView struct {
	Lines         []CartLineView `json:"lines"`
	ItemCount     int            `json:"item_count"`
	TotalQuantity int64          `json:"total_quantity"`
	Subtotal      string         `json:"subtotal"`
	VAT           string         `json:"vat"`
	GrandTotal    string         `json:"grand_total"`
	Customer      string         `json:"customer"`
	CustomerType  string         `json:"customer_type"`
	ReferralCode  string         `json:"referral_code,omitempty"`
	PaymentMode   string         `json:"payment_mode"`
	// Indicative commission percentage for the selected customer type;
	// the authoritative figure comes back on the invoice.
	CommissionRate string `json:"commission_rate,omitempty"`
}

// SessionView is the active session in API responses
type SessionView struct {
	ID           string    `json:"id"`
	CalendarDate string    `json:"calendar_date"`
	StartTime    time.Time `json:"start_time"`
	OpeningCash  string    `json:"opening_cash"`
	POSProfileID string    `json:"pos_profile_id"`
	Warehouse    string    `json:"warehouse"`
}

// CheckoutResult reports a completed sale
type CheckoutResult struct {
	InvoiceID        string `json:"invoice_id"`
	GrandTotal       string `json:"grand_total"`
	TotalQty         int64  `json:"total_qty"`
	PaymentMode      string `json:"payment_mode"`
	CommissionAmount string `json:"commission_amount,omitempty"`
}

// toCartView converts a domain cart for responses.
// Caller must hold the cart lock.
func toCartView(cart *pos.Cart) CartView {
	lines := make([]CartLineView, 0, cart.ItemCount())
	for _, line := range cart.Lines() {
		rate, _ := line.UnitRate.Float64()
		total, _ := line.LineTotal.Float64()
		lines = append(lines, CartLineView{
			ItemCode:  line.ItemCode,
			ItemName:  line.ItemName,
			Quantity:  line.Quantity,
			UnitRate:  rate,
			LineTotal: total,
		})
	}

	view := CartView{
		Lines:         lines,
		ItemCount:     cart.ItemCount(),
		TotalQuantity: cart.TotalQuantity(),
		Subtotal:      cart.Subtotal().StringFixed(2),
		VAT:           cart.VAT().StringFixed(2),
		GrandTotal:    cart.GrandTotal().StringFixed(2),
		Customer:      cart.Customer(),
		CustomerType:  cart.CustomerType().String(),
		ReferralCode:  cart.ReferralCode(),
		PaymentMode:   cart.PaymentMode().String(),
	}
	if rate := cart.CustomerType().CommissionRate(); !rate.IsZero() {
		view.CommissionRate = rate.String()
	}
	return view
}

// ToSessionView converts a domain session for responses
func ToSessionView(session *pos.Session) SessionView {
	return SessionView{
		ID:           session.ID.String(),
		CalendarDate: session.CalendarDate,
		StartTime:    session.StartTime,
		OpeningCash:  session.OpeningCash.StringFixed(2),
		POSProfileID: session.POSProfileID,
		Warehouse:    session.Warehouse,
	}
}
