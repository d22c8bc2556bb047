package pos

import (
	"github.com/google/uuid"
	"github.com/rangipos/terminal/internal/domain/shared"
	"github.com/rangipos/terminal/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// SaleLine is a cart line frozen into a sale request. Every line sold
// through the terminal is vatable.
type SaleLine struct {
	ItemCode string
	ItemName string
	Quantity int64
	UnitRate decimal.Decimal
	Amount   decimal.Decimal
	Vatable  bool
}

// SalePayment settles the sale. Exactly one payment per request; its amount
// is the cart grand total at submit time, which the backend independently
// recomputes and validates.
type SalePayment struct {
	Mode   PaymentMode
	Amount valueobject.Money
}

// SaleRequest is an immutable snapshot of the transaction context assembled
// once per checkout attempt and discarded after the invoice call resolves.
// The idempotency token is client-generated so a user-driven retry after a
// timeout can be identified server-side; the terminal itself performs no
// deduplication.
type SaleRequest struct {
	IdempotencyToken uuid.UUID
	Customer         string
	CustomerType     CustomerType
	ReferralCode     string
	POSProfileID     string
	Warehouse        string
	Lines            []SaleLine
	Payment          SalePayment
	Subtotal         valueobject.Money
	VAT              valueobject.Money
	GrandTotal       valueobject.Money
}

// NewSaleRequest snapshots the cart and session into a sale request.
// The cart must be non-empty and the session must carry a POS profile;
// these are the only hard preconditions.
func NewSaleRequest(cart *Cart, session *Session) (*SaleRequest, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}
	if session == nil || session.POSProfileID == "" {
		return nil, shared.ErrNoProfile
	}

	subtotal := cart.Subtotal()
	vat := VAT(subtotal)
	grand := GrandTotal(subtotal, vat)

	lines := make([]SaleLine, 0, cart.ItemCount())
	for _, line := range cart.Lines() {
		lines = append(lines, SaleLine{
			ItemCode: line.ItemCode,
			ItemName: line.ItemName,
			Quantity: line.Quantity,
			UnitRate: line.UnitRate,
			Amount:   line.LineTotal,
			Vatable:  true,
		})
	}

	return &SaleRequest{
		IdempotencyToken: uuid.New(),
		Customer:         cart.Customer(),
		CustomerType:     cart.CustomerType(),
		ReferralCode:     cart.ReferralCode(),
		POSProfileID:     session.POSProfileID,
		Warehouse:        session.Warehouse,
		Lines:            lines,
		Payment:          SalePayment{Mode: cart.PaymentMode(), Amount: grand},
		Subtotal:         subtotal,
		VAT:              vat,
		GrandTotal:       grand,
	}, nil
}
