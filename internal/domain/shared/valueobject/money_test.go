package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid inputs", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), KES)
		require.NoError(t, err)
		assert.Equal(t, "100.50", m.StringFixed(2))
		assert.Equal(t, KES, m.Currency())
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(10), "")
		assert.Error(t, err)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1250.00", KES)
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromInt(1250)))

	_, err = NewMoneyFromString("not-a-number", KES)
	assert.Error(t, err)
}

func TestMoney_AddSubtract(t *testing.T) {
	a := NewMoneyKESFromFloat(100)
	b := NewMoneyKESFromFloat(50.25)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "150.25", sum.StringFixed(2))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "49.75", diff.StringFixed(2))

	t.Run("mismatched currencies", func(t *testing.T) {
		usd, _ := NewMoney(decimal.NewFromInt(10), USD)
		_, err := a.Add(usd)
		assert.Error(t, err)
		_, err = a.Subtract(usd)
		assert.Error(t, err)
	})
}

func TestMoney_Round(t *testing.T) {
	// Halves round away from zero at the cent boundary
	tests := []struct {
		in   string
		want string
	}{
		{"15.9984", "16.00"},
		{"10.005", "10.01"},
		{"-10.005", "-10.01"},
		{"10.004", "10.00"},
		{"200.00", "200.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := NewMoneyFromString(tt.in, KES)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Round(2).StringFixed(2))
		})
	}
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneyKESFromFloat(10)
	b := NewMoneyKESFromFloat(20)

	lt, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := b.GreaterThan(a)
	require.NoError(t, err)
	assert.True(t, gt)

	assert.True(t, a.Equals(NewMoneyKESFromFloat(10)))
	assert.False(t, a.Equals(b))
}

func TestMoney_Signs(t *testing.T) {
	assert.True(t, ZeroKES().IsZero())
	assert.True(t, NewMoneyKESFromFloat(5).IsPositive())
	assert.True(t, NewMoneyKESFromFloat(5).Negate().IsNegative())
	assert.Equal(t, "5.00", NewMoneyKESFromFloat(-5).Abs().StringFixed(2))
}

func TestMoney_JSON(t *testing.T) {
	m := NewMoneyKESFromFloat(99.99)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"99.99","currency":"KES"}`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equals(back))
}

func TestMoney_Scan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("123.45"))
	assert.Equal(t, "123.45", m.StringFixed(2))
	assert.Equal(t, DefaultCurrency, m.Currency())

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())

	assert.Error(t, m.Scan(true))
}
