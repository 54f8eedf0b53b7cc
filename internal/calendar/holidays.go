package calendar

import "time"

// holidayYearMin/Max bound the precomputed national holiday table. Plans
// are quoted at most a few years out, so the window is generous.
const (
	holidayYearMin = 2000
	holidayYearMax = 2100
)

var holidays = buildHolidayTable()

type dateKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dateKey {
	y, m, d := t.Date()
	return dateKey{y, m, d}
}

// buildHolidayTable precomputes the Brazilian national holidays: the fixed
// civil/religious dates plus the movable feasts anchored on Easter
// (Carnival Monday and Tuesday, Good Friday, Corpus Christi).
func buildHolidayTable() map[dateKey]struct{} {
	table := make(map[dateKey]struct{})
	add := func(t time.Time) {
		table[keyOf(t)] = struct{}{}
	}

	for year := holidayYearMin; year <= holidayYearMax; year++ {
		add(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))   // Confraternização Universal
		add(time.Date(year, time.April, 21, 0, 0, 0, 0, time.UTC))    // Tiradentes
		add(time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC))       // Dia do Trabalho
		add(time.Date(year, time.September, 7, 0, 0, 0, 0, time.UTC)) // Independência
		add(time.Date(year, time.October, 12, 0, 0, 0, 0, time.UTC))  // Nossa Senhora Aparecida
		add(time.Date(year, time.November, 2, 0, 0, 0, 0, time.UTC))  // Finados
		add(time.Date(year, time.November, 15, 0, 0, 0, 0, time.UTC)) // Proclamação da República
		add(time.Date(year, time.November, 20, 0, 0, 0, 0, time.UTC)) // Consciência Negra
		add(time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)) // Natal

		easter := easterSunday(year)
		add(easter.AddDate(0, 0, -48)) // Carnival Monday
		add(easter.AddDate(0, 0, -47)) // Carnival Tuesday
		add(easter.AddDate(0, 0, -2))  // Good Friday
		add(easter.AddDate(0, 0, 60))  // Corpus Christi
	}

	return table
}

// easterSunday computes Gregorian Easter via the anonymous Gregorian
// (Meeus/Jones/Butcher) algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// isHoliday reports whether the calendar date of t is a national holiday.
func isHoliday(t time.Time) bool {
	_, ok := holidays[keyOf(t)]
	return ok
}
