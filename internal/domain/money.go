package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// exponentMultipliers maps the documented exponent codes to their scale.
// The map is intentionally closed: codes outside it ("?", "+", "h", digits,
// empty) mean the damage amount is unknown, never that the multiplier is 1.
var exponentMultipliers = map[string]decimal.Decimal{
	"K": decimal.New(1, 3),
	"M": decimal.New(1, 6),
	"B": decimal.New(1, 9),
}

// Amount is a monetary value that may be absent. Absent is distinct from
// zero: zero means no damage was reported, absent means the reported amount
// could not be decoded. The two collapse only at the explicit OrZero
// substitution, keeping the distinction available to stricter consumers.
type Amount struct {
	value decimal.Decimal
	known bool
}

// KnownAmount wraps a decoded monetary value.
func KnownAmount(v decimal.Decimal) Amount {
	return Amount{value: v, known: true}
}

// AbsentAmount is the sentinel for an undecodable monetary value.
func AbsentAmount() Amount {
	return Amount{}
}

// Known reports whether the amount was successfully decoded.
func (a Amount) Known() bool { return a.known }

// OrZero returns the decoded value, substituting zero when absent.
func (a Amount) OrZero() decimal.Decimal {
	if !a.known {
		return decimal.Zero
	}
	return a.value
}

// ExpandDamage combines a damage coefficient with its exponent code into an
// absolute dollar amount. Codes are matched after trimming and case folding,
// so "k" and "K" both scale by a thousand; anything else yields an absent
// amount. Pure per-record transform, applied identically to the property and
// crop columns.
func ExpandDamage(coefficient float64, code string) Amount {
	mult, ok := exponentMultipliers[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return AbsentAmount()
	}
	return KnownAmount(decimal.NewFromFloat(coefficient).Mul(mult))
}
