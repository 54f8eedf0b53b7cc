package engine

import (
	"errors"
	"math"
)

// ErrNoConvergence is returned when the effective-rate target cannot be
// bracketed inside the search interval.
var ErrNoConvergence = errors.New("effective rate target out of bracket")

const (
	rateSearchLow  = -0.9999
	rateSearchHigh = 10.0
	// rateBisectionSteps is fixed so identical inputs produce
	// bit-identical rates on every platform.
	rateBisectionSteps = 200
	// discountMonthDays converts calendar days to months on a 365-day
	// year basis when discounting installment cash flows.
	discountMonthDays = 365.0 / 12.0
)

// SolveEffectiveRate finds the monthly rate at which the schedule's
// installment payments, discounted over their elapsed calendar days,
// equal target.
//
// The present value is strictly decreasing in the rate, so plain bisection
// over a fixed step count is both deterministic and sufficient for the
// required 1e-6 residual tolerance.
func SolveEffectiveRate(payment float64, periods []Period, target float64) (float64, error) {
	presentValue := func(rate float64) float64 {
		pv := 0.0
		for _, p := range periods {
			pv += payment * math.Pow(1+rate, -float64(p.CalendarDays)/discountMonthDays)
		}
		return pv
	}

	lo, hi := rateSearchLow, rateSearchHigh
	if presentValue(lo) < target || presentValue(hi) > target {
		return 0, ErrNoConvergence
	}

	for i := 0; i < rateBisectionSteps; i++ {
		mid := (lo + hi) / 2
		if presentValue(mid) > target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

// Annualize converts a monthly effective rate to its yearly equivalent.
func Annualize(monthlyRate float64) float64 {
	return math.Pow(1+monthlyRate, 12) - 1
}
