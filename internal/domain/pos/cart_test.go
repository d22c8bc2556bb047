package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem(t *testing.T) {
	t.Run("first add inserts line with quantity 1", func(t *testing.T) {
		cart := NewCart()
		line := cart.AddItem("PAINT-5L", "Crown Emulsion 5L", decimal.NewFromFloat(2500))

		assert.Equal(t, int64(1), line.Quantity)
		assert.Equal(t, "2500", line.LineTotal.String())
		assert.Equal(t, 1, cart.ItemCount())
	})

	t.Run("repeat adds increment quantity against the rate at first add", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("PAINT-5L", "Crown Emulsion 5L", decimal.NewFromFloat(2500))
		// A changed rate on a repeat add is ignored
		cart.AddItem("PAINT-5L", "Crown Emulsion 5L", decimal.NewFromFloat(9999))
		line := cart.AddItem("PAINT-5L", "Crown Emulsion 5L", decimal.NewFromFloat(1))

		assert.Equal(t, int64(3), line.Quantity)
		assert.True(t, line.UnitRate.Equal(decimal.NewFromFloat(2500)))
		assert.True(t, line.LineTotal.Equal(decimal.NewFromFloat(7500)))
		assert.Equal(t, 1, cart.ItemCount())
	})

	t.Run("quantity equals the number of add calls", func(t *testing.T) {
		cart := NewCart()
		for i := 0; i < 7; i++ {
			cart.AddItem("BRUSH-4IN", "Brush 4in", decimal.NewFromFloat(150))
		}
		line := cart.Line("BRUSH-4IN")
		require.NotNil(t, line)
		assert.Equal(t, int64(7), line.Quantity)
		assert.True(t, line.LineTotal.Equal(decimal.NewFromFloat(1050)))
	})

	t.Run("negative and zero rates are accepted as-is", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("FREE", "Promo item", decimal.Zero)
		cart.AddItem("ADJ", "Manual adjustment", decimal.NewFromFloat(-50))
		assert.Equal(t, 2, cart.ItemCount())
		assert.True(t, cart.Subtotal().Amount().Equal(decimal.NewFromFloat(-50)))
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("A", "A", decimal.NewFromInt(1))
		cart.AddItem("B", "B", decimal.NewFromInt(2))
		cart.AddItem("C", "C", decimal.NewFromInt(3))
		cart.AddItem("A", "A", decimal.NewFromInt(1))

		lines := cart.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, "A", lines[0].ItemCode)
		assert.Equal(t, "B", lines[1].ItemCode)
		assert.Equal(t, "C", lines[2].ItemCode)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("applies delta and recomputes line total", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("PAINT-1L", "Gloss 1L", decimal.NewFromFloat(650))
		cart.UpdateQuantity("PAINT-1L", 4)

		line := cart.Line("PAINT-1L")
		require.NotNil(t, line)
		assert.Equal(t, int64(5), line.Quantity)
		assert.True(t, line.LineTotal.Equal(decimal.NewFromFloat(3250)))
	})

	t.Run("never goes negative, zero removes the line", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("PAINT-1L", "Gloss 1L", decimal.NewFromFloat(650))
		cart.UpdateQuantity("PAINT-1L", -1)
		assert.Nil(t, cart.Line("PAINT-1L"))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("large negative delta removes rather than retaining zero", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("PAINT-1L", "Gloss 1L", decimal.NewFromFloat(650))
		cart.UpdateQuantity("PAINT-1L", 2)
		cart.UpdateQuantity("PAINT-1L", -100)
		assert.Equal(t, 0, cart.ItemCount())
	})

	t.Run("unknown item code is a no-op", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("A", "A", decimal.NewFromInt(10))
		cart.UpdateQuantity("MISSING", 5)
		assert.Equal(t, 1, cart.ItemCount())
		assert.Equal(t, int64(1), cart.TotalQuantity())
	})
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem("A", "A", decimal.NewFromInt(10))
	cart.AddItem("B", "B", decimal.NewFromInt(20))

	cart.RemoveItem("A")
	assert.Nil(t, cart.Line("A"))
	assert.NotNil(t, cart.Line("B"))

	// no-op for unknown code
	cart.RemoveItem("A")
	assert.Equal(t, 1, cart.ItemCount())
}

func TestCart_Clear(t *testing.T) {
	t.Run("resets the whole transaction context", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("A", "A", decimal.NewFromInt(10))
		cart.SetCustomer("Mutua Hardware", CustomerTypeWholesaler, "REF-77")
		cart.SetPaymentMode(PaymentModeMpesa)

		cart.Clear()

		assert.True(t, cart.IsEmpty())
		assert.Equal(t, WalkInCustomer, cart.Customer())
		assert.Equal(t, CustomerTypeDirect, cart.CustomerType())
		assert.Empty(t, cart.ReferralCode())
		assert.Equal(t, DefaultPaymentMode, cart.PaymentMode())
	})

	t.Run("clearing an empty cart is a no-op", func(t *testing.T) {
		cart := NewCart()
		before := cart.Lines()
		cart.Clear()
		assert.Equal(t, before, cart.Lines())
		assert.True(t, cart.IsEmpty())
		assert.True(t, cart.GrandTotal().IsZero())
	})
}

func TestCart_Selections(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, WalkInCustomer, cart.Customer())

	cart.SetCustomer("Jane Wanjiru", CustomerTypeFundi, "FUNDI-01")
	assert.Equal(t, "Jane Wanjiru", cart.Customer())
	assert.Equal(t, CustomerTypeFundi, cart.CustomerType())

	// invalid selections are ignored
	cart.SetCustomer("Jane Wanjiru", CustomerType("Unknown"), "FUNDI-01")
	assert.Equal(t, CustomerTypeFundi, cart.CustomerType())
	cart.SetPaymentMode(PaymentMode("Barter"))
	assert.Equal(t, DefaultPaymentMode, cart.PaymentMode())
}

func TestCart_Totals(t *testing.T) {
	cart := NewCart()
	cart.AddItem("PAINT-5L", "Emulsion 5L", decimal.NewFromFloat(1000))
	cart.UpdateQuantity("PAINT-5L", 0)
	cart.AddItem("THINNER", "Thinner 500ml", decimal.NewFromFloat(250))

	assert.Equal(t, "1250.00", cart.Subtotal().StringFixed(2))
	assert.Equal(t, "200.00", cart.VAT().StringFixed(2))
	assert.Equal(t, "1450.00", cart.GrandTotal().StringFixed(2))
}
