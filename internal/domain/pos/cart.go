package pos

import (
	"time"

	"github.com/rangipos/terminal/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CartLine is a single line item in the cart. At most one line exists per
// item code; the unit rate is frozen at first add and repeat adds only
// increment the quantity.
type CartLine struct {
	ItemCode  string          `json:"item_code"`
	ItemName  string          `json:"item_name"`
	Quantity  int64           `json:"quantity"`
	UnitRate  decimal.Decimal `json:"unit_rate"`
	LineTotal decimal.Decimal `json:"line_total"`
	AddedAt   time.Time       `json:"added_at"`
}

// Cart is the terminal's transaction context: the ordered line items plus
// the customer and payment selections attached to the sale being built.
// It lives purely in memory; a process restart loses an uncommitted cart.
type Cart struct {
	lines        []CartLine
	customer     string
	customerType CustomerType
	referralCode string
	paymentMode  PaymentMode
}

// NewCart creates an empty cart with default selections
func NewCart() *Cart {
	return &Cart{
		lines:        make([]CartLine, 0),
		customerType: CustomerTypeDirect,
		paymentMode:  DefaultPaymentMode,
	}
}

// AddItem adds one unit of the item to the cart. If a line with the same
// code already exists its quantity is incremented and the line total is
// recomputed from the rate captured at first add; the incoming rate is
// ignored on repeat adds. Rates are accepted as-is, without validation.
func (c *Cart) AddItem(itemCode, itemName string, unitRate decimal.Decimal) CartLine {
	for idx := range c.lines {
		if c.lines[idx].ItemCode == itemCode {
			c.lines[idx].Quantity++
			c.lines[idx].LineTotal = decimal.NewFromInt(c.lines[idx].Quantity).Mul(c.lines[idx].UnitRate)
			return c.lines[idx]
		}
	}

	line := CartLine{
		ItemCode:  itemCode,
		ItemName:  itemName,
		Quantity:  1,
		UnitRate:  unitRate,
		LineTotal: unitRate,
		AddedAt:   time.Now(),
	}
	c.lines = append(c.lines, line)
	return line
}

// UpdateQuantity adjusts a line's quantity by delta, flooring at zero.
// A line that reaches zero is removed, never retained. Unknown item codes
// are a no-op.
func (c *Cart) UpdateQuantity(itemCode string, delta int64) {
	for idx := range c.lines {
		if c.lines[idx].ItemCode != itemCode {
			continue
		}
		qty := c.lines[idx].Quantity + delta
		if qty <= 0 {
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
			return
		}
		c.lines[idx].Quantity = qty
		c.lines[idx].LineTotal = decimal.NewFromInt(qty).Mul(c.lines[idx].UnitRate)
		return
	}
}

// RemoveItem removes the line with the given code if present
func (c *Cart) RemoveItem(itemCode string) {
	for idx := range c.lines {
		if c.lines[idx].ItemCode == itemCode {
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
			return
		}
	}
}

// Clear resets the whole transaction context in one operation: line items,
// customer identity and payment selections. Cart contents and checkout-form
// state are deliberately coupled so they can never diverge.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
	c.customer = ""
	c.customerType = CustomerTypeDirect
	c.referralCode = ""
	c.paymentMode = DefaultPaymentMode
}

// SetCustomer attaches the customer identity to the transaction
func (c *Cart) SetCustomer(name string, customerType CustomerType, referralCode string) {
	c.customer = name
	if customerType.IsValid() {
		c.customerType = customerType
	}
	c.referralCode = referralCode
}

// SetPaymentMode selects how the sale will be settled
func (c *Cart) SetPaymentMode(mode PaymentMode) {
	if mode.IsValid() {
		c.paymentMode = mode
	}
}

// Customer returns the selected customer, or the walk-in sentinel when none
// has been chosen.
func (c *Cart) Customer() string {
	if c.customer == "" {
		return WalkInCustomer
	}
	return c.customer
}

// CustomerType returns the selected customer type
func (c *Cart) CustomerType() CustomerType {
	return c.customerType
}

// ReferralCode returns the attached referral code, if any
func (c *Cart) ReferralCode() string {
	return c.referralCode
}

// PaymentMode returns the selected payment mode
func (c *Cart) PaymentMode() PaymentMode {
	return c.paymentMode
}

// IsEmpty returns true if the cart has no line items
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the line items in insertion order
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line with the given code, or nil
func (c *Cart) Line(itemCode string) *CartLine {
	for idx := range c.lines {
		if c.lines[idx].ItemCode == itemCode {
			line := c.lines[idx]
			return &line
		}
	}
	return nil
}

// ItemCount returns the number of distinct lines
func (c *Cart) ItemCount() int {
	return len(c.lines)
}

// TotalQuantity returns the sum of all line quantities
func (c *Cart) TotalQuantity() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal derives the exact sum of line totals
func (c *Cart) Subtotal() valueobject.Money {
	return Subtotal(c.lines)
}

// VAT derives tax on the aggregate subtotal
func (c *Cart) VAT() valueobject.Money {
	return VAT(c.Subtotal())
}

// GrandTotal derives the amount presented to the customer
func (c *Cart) GrandTotal() valueobject.Money {
	subtotal := c.Subtotal()
	return GrandTotal(subtotal, VAT(subtotal))
}
