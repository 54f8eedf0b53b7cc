// Package money centralizes the monetary and rate rounding policy used by
// the payment-plan engine. Raw compounding and root-finding run on float64;
// every value that crosses the engine boundary is rounded here through
// shopspring/decimal so the half-up behavior is explicit and consistent.
package money

import (
	"github.com/shopspring/decimal"
)

// CurrencyCode is the single currency this engine computes in.
const CurrencyCode = "BRL"

// RoundCents rounds an amount in the major currency unit to cents,
// half away from zero.
func RoundCents(amount float64) float64 {
	return Round(amount, 2)
}

// RoundRate rounds a monthly effective rate to its display precision.
func RoundRate(rate float64) float64 {
	return Round(rate, 4)
}

// RoundYearlyRate rounds an annualized effective rate to its display
// precision.
func RoundYearlyRate(rate float64) float64 {
	return Round(rate, 6)
}

// Round rounds to the given number of decimal places, half away from zero.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Cents converts an amount in the major unit to an integer cent count,
// rounding half away from zero.
func Cents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Round(2).Shift(2).IntPart()
}

// FromCents converts an integer cent count back to the major unit.
func FromCents(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}
