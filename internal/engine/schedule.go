// Package engine holds the numeric core of the payment-plan calculation:
// the amortization schedule builder, the installment amount solver with its
// IOF gross-up fixed point, and the effective-rate root finder. Everything
// here is a pure function of its inputs.
package engine

import (
	"math"
	"time"

	"github.com/ParceladoLara/payment-plan-go/internal/calendar"
)

// businessDaysPerMonth is the reference period the nominal monthly rate is
// spread over when discounting by elapsed business days.
const businessDaysPerMonth = 21.0

// Period is one row of the amortization schedule. It depends only on the
// disbursement date, the due date and the nominal rate, never on amounts.
type Period struct {
	// DueDate is the monthly anniversary snapped to a business day,
	// carrying the wall-clock time of the first due date.
	DueDate time.Time
	// InvoiceDueDate is DueDate normalized to 07:00 UTC-3.
	InvoiceDueDate time.Time
	// CalendarDays counts whole days since disbursement.
	CalendarDays int
	// BusinessDays counts business days since disbursement (exclusive of
	// the disbursement date, inclusive of the due date).
	BusinessDays int
	// Factor is the period's discount factor (1+rate)^(-BusinessDays/21).
	Factor float64
	// AccumulatedFactor is the running sum of factors up to this period,
	// i.e. the annuity present-value factor of the prefix schedule.
	AccumulatedFactor float64
}

// BuildSchedule produces the schedule rows for the given dates and nominal
// monthly rate. Due dates are successive monthly anniversaries of firstDue
// (day-of-month clamped), each advanced to the next business day.
func BuildSchedule(disbursement, firstDue time.Time, installments int, interestRate float64) []Period {
	if installments <= 0 {
		return nil
	}

	periods := make([]Period, installments)
	acc := 0.0
	for i := 0; i < installments; i++ {
		due := calendar.NextBusinessDay(calendar.AddMonths(firstDue, i))
		businessDays := calendar.BusinessDaysBetween(disbursement, due)
		factor := math.Pow(1+interestRate, -float64(businessDays)/businessDaysPerMonth)
		acc += factor

		periods[i] = Period{
			DueDate:           due,
			InvoiceDueDate:    calendar.Normalize(due),
			CalendarDays:      calendar.CalendarDaysBetween(disbursement, due),
			BusinessDays:      businessDays,
			Factor:            factor,
			AccumulatedFactor: acc,
		}
	}
	return periods
}
