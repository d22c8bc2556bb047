package pos

import (
	"github.com/rangipos/terminal/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// VATRate is the statutory VAT rate applied to all vatable line items (16%).
var VATRate = decimal.RequireFromString("0.16")

// Subtotal returns the exact sum of all line totals. No rounding is applied
// here; rounding happens once per derived value at the 2-decimal boundary.
func Subtotal(lines []CartLine) valueobject.Money {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}
	return valueobject.NewMoneyKES(total)
}

// VAT computes value-added tax on the aggregate subtotal, rounded to 2
// decimal places with halves away from zero. VAT is never summed from
// per-line amounts: the backend validates the grand total against the
// payment amount, so both sides must round the same aggregate once.
func VAT(subtotal valueobject.Money) valueobject.Money {
	return subtotal.Multiply(VATRate).Round(2)
}

// GrandTotal is subtotal plus VAT, rounded to 2 decimal places.
func GrandTotal(subtotal, vat valueobject.Money) valueobject.Money {
	return subtotal.MustAdd(vat).Round(2)
}
