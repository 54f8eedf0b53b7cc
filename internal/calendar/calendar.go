// Package calendar implements the business-day calendar the payment-plan
// engine places every date with: weekends and Brazilian national holidays
// are non-business days, and all civil dates live at a fixed UTC-3 offset
// so date comparisons are unambiguous regardless of the caller's zone.
package calendar

import "time"

// Zone is the fixed civil offset every date is normalized to.
var Zone = time.FixedZone("-03:00", -3*60*60)

// NormalizedHour is the wall-clock hour normalized instants carry.
const NormalizedHour = 7

// Normalize maps an arbitrary instant to its UTC calendar date rebuilt at
// 07:00:00 in the fixed UTC-3 zone.
func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, NormalizedHour, 0, 0, 0, Zone)
}

// IsBusinessDay reports whether the calendar date of t (in its own zone)
// is a business day.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !isHoliday(t)
}

// NextBusinessDay returns t unchanged when it already falls on a business
// day, otherwise the first business day after it. The wall-clock time and
// zone of t are preserved.
func NextBusinessDay(t time.Time) time.Time {
	for !IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// BusinessDaysBetween counts the business days in the half-open interval
// (from, to], stepping by calendar day.
func BusinessDaysBetween(from, to time.Time) int {
	n := 0
	for d := from.AddDate(0, 0, 1); !d.After(to); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			n++
		}
	}
	return n
}

// NonBusinessDaysBetween returns every non-business day in the inclusive
// range [start, end], each normalized to 07:00 UTC-3. Inputs are
// normalized first; an inverted range yields nil.
func NonBusinessDaysBetween(start, end time.Time) []time.Time {
	from := Normalize(start)
	to := Normalize(end)

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !IsBusinessDay(d) {
			days = append(days, d)
		}
	}
	return days
}

// AddMonths advances t by the given number of months, clamping the day of
// month to the target month's length (Jan 31 + 1 month = Feb 28/29) instead
// of overflowing into the next month.
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	total := y*12 + int(m) - 1 + months
	year := total / 12
	month := time.Month(total%12 + 1)
	if last := daysInMonth(year, month); d > last {
		d = last
	}
	h, min, s := t.Clock()
	return time.Date(year, month, d, h, min, s, t.Nanosecond(), t.Location())
}

// CalendarDaysBetween returns the whole calendar days from a to b,
// comparing civil dates in each instant's own zone.
func CalendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// SameCivilDate reports whether two instants share a calendar date, each
// read in its own zone.
func SameCivilDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
