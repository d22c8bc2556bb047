package pos

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rangipos/terminal/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaleRequest(t *testing.T) {
	session, err := NewSession(kes(5000), "Main Counter", "Nairobi Store")
	require.NoError(t, err)

	t.Run("snapshots cart and session", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("PAINT-5L", "Emulsion 5L", decimal.NewFromFloat(1000))
		cart.AddItem("THINNER", "Thinner 500ml", decimal.NewFromFloat(250))
		cart.SetPaymentMode(PaymentModeMpesa)

		req, err := NewSaleRequest(cart, session)
		require.NoError(t, err)

		assert.Equal(t, WalkInCustomer, req.Customer)
		assert.Equal(t, CustomerTypeDirect, req.CustomerType)
		assert.Equal(t, "Main Counter", req.POSProfileID)
		assert.Equal(t, "Nairobi Store", req.Warehouse)
		assert.NotEqual(t, uuid.Nil, req.IdempotencyToken)

		require.Len(t, req.Lines, 2)
		for _, line := range req.Lines {
			assert.True(t, line.Vatable)
		}

		assert.Equal(t, "1250.00", req.Subtotal.StringFixed(2))
		assert.Equal(t, "200.00", req.VAT.StringFixed(2))
		assert.Equal(t, "1450.00", req.GrandTotal.StringFixed(2))
		assert.Equal(t, PaymentModeMpesa, req.Payment.Mode)
		assert.True(t, req.Payment.Amount.Equals(req.GrandTotal))
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		_, err := NewSaleRequest(NewCart(), session)
		assert.ErrorIs(t, err, shared.ErrEmptyCart)
	})

	t.Run("rejects missing profile", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("A", "A", decimal.NewFromInt(10))

		_, err := NewSaleRequest(cart, nil)
		assert.ErrorIs(t, err, shared.ErrNoProfile)

		_, err = NewSaleRequest(cart, &Session{})
		assert.ErrorIs(t, err, shared.ErrNoProfile)
	})

	t.Run("snapshot is detached from later cart mutations", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("A", "A", decimal.NewFromInt(100))

		req, err := NewSaleRequest(cart, session)
		require.NoError(t, err)

		cart.AddItem("A", "A", decimal.NewFromInt(100))
		cart.AddItem("B", "B", decimal.NewFromInt(50))

		require.Len(t, req.Lines, 1)
		assert.Equal(t, int64(1), req.Lines[0].Quantity)
		assert.Equal(t, "116.00", req.GrandTotal.StringFixed(2))
	})

	t.Run("fresh token per attempt", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem("A", "A", decimal.NewFromInt(10))

		first, err := NewSaleRequest(cart, session)
		require.NoError(t, err)
		second, err := NewSaleRequest(cart, session)
		require.NoError(t, err)
		assert.NotEqual(t, first.IdempotencyToken, second.IdempotencyToken)
	})
}
