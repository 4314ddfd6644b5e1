package holiday

import (
	"fmt"
	"time"
)

// FeastDate is the computed Easter Sunday of a given year.
//
// Month is 1-based (time.April == 4). The value is immutable: every method
// returns a fresh time.Time, so holders of a FeastDate can never alter a
// cached entry.
type FeastDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Time returns the feast as midnight UTC.
func (f FeastDate) Time() time.Time {
	return time.Date(f.Year, f.Month, f.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days away from the feast (n may be negative).
func (f FeastDate) AddDays(n int) time.Time {
	return f.Time().AddDate(0, 0, n)
}

// Weekday of the feast. Always time.Sunday for a correctly computed value.
func (f FeastDate) Weekday() time.Weekday {
	return f.Time().Weekday()
}

// IsZero reports whether f is the zero value (no feast available).
func (f FeastDate) IsZero() bool {
	return f.Year == 0 && f.Month == 0 && f.Day == 0
}

func (f FeastDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", f.Year, int(f.Month), f.Day)
}

// ComputeFeast returns Easter Sunday of the proleptic Gregorian year y.
//
// Closed-form Gauss-type computus; only integer floor division and modulo
// are used, so the result is exact for every year. Range validation is the
// caller's job (see FeastCache).
func ComputeFeast(y int) FeastDate {
	c := floorDiv(y, 100)
	n := y - 19*floorDiv(y, 19)
	k := floorDiv(c-17, 25)

	i := c - floorDiv(c, 4) - floorDiv(c-k, 3) + 19*n + 15
	i = i - 30*floorDiv(i, 30)
	i = i - floorDiv(i, 28)*(1-floorDiv(i, 28)*floorDiv(29, i+1)*floorDiv(21-n, 11))

	j := y + floorDiv(y, 4) + i + 2 - c + floorDiv(c, 4)
	j = j - 7*floorDiv(j, 7)

	l := i - j
	month := 3 + floorDiv(l+40, 44)
	day := l + 28 - 31*floorDiv(month, 4)

	return FeastDate{Year: y, Month: time.Month(month), Day: day}
}

// floorDiv is integer division rounding toward negative infinity.
// Go's / truncates toward zero; c-17 is negative for years before 1700.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
