package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), EUR)
		require.NoError(t, err)
		assert.Equal(t, EUR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyEUR(t *testing.T) {
	m := NewMoneyEUR(decimal.NewFromFloat(50.00))
	assert.Equal(t, EUR, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(50.00)))
}

func TestNewMoneyEURFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyEURFromString("123.45")
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyEURFromString("not-a-number")
		assert.Error(t, err)
	})
}

func TestMoneyAddSubtract(t *testing.T) {
	a := NewMoneyEURFromFloat(100)
	b := NewMoneyEURFromFloat(40.50)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "140.50", sum.StringFixed(2))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "59.50", diff.StringFixed(2))

	t.Run("currency mismatch", func(t *testing.T) {
		usd, _ := NewMoney(decimal.NewFromInt(10), USD)
		_, err := a.Add(usd)
		assert.Error(t, err)
		_, err = a.Subtract(usd)
		assert.Error(t, err)
	})
}

func TestMoneyMultiply(t *testing.T) {
	m := NewMoneyEURFromFloat(19.99)
	assert.Equal(t, "59.97", m.MultiplyByInt(3).StringFixed(2))
	assert.Equal(t, "9.995", m.Multiply(decimal.NewFromFloat(0.5)).Amount().String())
}

func TestMoneyCalculatePercentage(t *testing.T) {
	t.Run("positive base", func(t *testing.T) {
		m := NewMoneyEUR(decimal.NewFromInt(800))
		pct := m.CalculatePercentage(decimal.NewFromInt(20))
		assert.Equal(t, "160.00", pct.StringFixed(2))
	})

	t.Run("negative base keeps its sign", func(t *testing.T) {
		m := NewMoneyEUR(decimal.NewFromInt(-50))
		pct := m.CalculatePercentage(decimal.NewFromInt(30))
		assert.Equal(t, "-15.00", pct.StringFixed(2))
	})
}

func TestMoneySignPredicates(t *testing.T) {
	positive := NewMoneyEURFromFloat(100)
	negative := NewMoneyEURFromFloat(-100)
	zero := ZeroEUR()

	assert.True(t, positive.IsPositive())
	assert.True(t, negative.IsNegative())
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())
	assert.False(t, zero.IsNegative())
}

func TestMoneyRound(t *testing.T) {
	m := NewMoneyEUR(decimal.NewFromFloat(10.005))
	assert.Equal(t, "10.01", m.Round(2).Amount().String())
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := NewMoneyEURFromFloat(1234.56)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"1234.56","currency":"EUR"}`, string(data))

	var parsed Money
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, m.Equals(parsed))
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string amount with default currency", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("42.42"))
		assert.Equal(t, DefaultCurrency, m.Currency())
		assert.Equal(t, "42.42", m.StringFixed(2))
	})

	t.Run("nil scans to zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(true))
	})
}
