package paymentplan

import (
	"time"

	"github.com/ParceladoLara/payment-plan-go/internal/calendar"
)

// NextDisbursementDate returns the first date a disbursement may happen on
// or after base: the base instant normalized to 07:00 UTC-3, advanced to a
// business day, and never today. A candidate falling on the current
// calendar date advances one business day further.
func NextDisbursementDate(base time.Time) time.Time {
	return nextDisbursementDateAt(base, time.Now())
}

// nextDisbursementDateAt factors the clock out of NextDisbursementDate so
// the not-today rule is testable against a fixed "now".
func nextDisbursementDateAt(base, now time.Time) time.Time {
	d := calendar.NextBusinessDay(calendar.Normalize(base))
	if calendar.SameCivilDate(d, calendar.Normalize(now)) {
		d = calendar.NextBusinessDay(d.AddDate(0, 0, 1))
	}
	return d
}

// DisbursementDateRange returns the normalized window that spans the given
// number of days of disbursement room after base: the normalized base
// instant and the first business day after base+days.
func DisbursementDateRange(base time.Time, days int) (start, end time.Time) {
	start = calendar.Normalize(base)
	end = calendar.NextBusinessDay(start.AddDate(0, 0, days+1))
	return start, end
}

// NonBusinessDaysBetween lists every weekend day and national holiday in
// the inclusive range [start, end], each normalized to 07:00 UTC-3.
func NonBusinessDaysBetween(start, end time.Time) []time.Time {
	return calendar.NonBusinessDaysBetween(start, end)
}
