package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDamage(t *testing.T) {
	tests := []struct {
		name        string
		coefficient float64
		code        string
		expected    string
	}{
		{"thousands", 25, "K", "25000"},
		{"millions", 2.5, "M", "2500000"},
		{"billions", 1, "B", "1000000000"},
		{"lowercase code", 10, "k", "10000"},
		{"code with spaces", 3, " M ", "3000000"},
		{"fractional coefficient", 0.5, "K", "500"},
		{"zero coefficient", 0, "B", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := ExpandDamage(tt.coefficient, tt.code)
			require.True(t, amount.Known())
			assert.Equal(t, tt.expected, amount.OrZero().String())
		})
	}
}

func TestExpandDamage_InvalidCodes(t *testing.T) {
	// Undocumented markers mean the amount is unknown, never multiplier 1 or 0.
	for _, code := range []string{"", "?", "h", "H", "+", "-", "0", "5", "KM"} {
		t.Run("code "+code, func(t *testing.T) {
			amount := ExpandDamage(100, code)
			assert.False(t, amount.Known())
			assert.True(t, amount.OrZero().IsZero())
		})
	}
}

func TestAmount_AbsentVsZero(t *testing.T) {
	absent := AbsentAmount()
	zero := KnownAmount(decimal.Zero)

	// Both substitute to zero, but only one was actually reported as zero.
	assert.True(t, absent.OrZero().IsZero())
	assert.True(t, zero.OrZero().IsZero())
	assert.False(t, absent.Known())
	assert.True(t, zero.Known())
}
