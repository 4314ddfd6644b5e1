package holiday

import (
	"fmt"
	"time"
)

// IsWeekend reports whether t is a Saturday or a Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessDay reports whether t is neither a weekend day nor a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	return !IsWeekend(t) && !c.IsHoliday(t)
}

// MaxBusinessGap is the longest run of consecutive non-business days the
// walks search through before giving up with ErrNoBusinessDay.
const MaxBusinessGap = 10 * 366

// NextBusinessDay returns the first business day strictly after t.
// It fails with ErrYearOutOfRange when the walk leaves [MinYear, MaxYear]
// and with ErrNoBusinessDay after MaxBusinessGap non-business days.
func (c *Calendar) NextBusinessDay(t time.Time) (time.Time, error) {
	return c.walk(t, 1)
}

// PrevBusinessDay returns the last business day strictly before t, failing
// like NextBusinessDay.
func (c *Calendar) PrevBusinessDay(t time.Time) (time.Time, error) {
	return c.walk(t, -1)
}

func (c *Calendar) walk(t time.Time, step int) (time.Time, error) {
	d := DateOf(t)
	for i := 0; i < MaxBusinessGap; i++ {
		d = d.AddDate(0, 0, step)
		if y := d.Year(); y < MinYear || y > MaxYear {
			return time.Time{}, fmt.Errorf("%w: %d", ErrYearOutOfRange, y)
		}
		if c.IsBusinessDay(d) {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: none within %d days of %s",
		ErrNoBusinessDay, MaxBusinessGap, DateOf(t).Format("2006-01-02"))
}

// AddBusinessDays moves n business days away from t; negative n goes back.
// With n == 0 the date itself is returned, business day or not.
func (c *Calendar) AddBusinessDays(t time.Time, n int) (time.Time, error) {
	d := DateOf(t)
	var err error
	for ; n > 0; n-- {
		if d, err = c.NextBusinessDay(d); err != nil {
			return time.Time{}, err
		}
	}
	for ; n < 0; n++ {
		if d, err = c.PrevBusinessDay(d); err != nil {
			return time.Time{}, err
		}
	}
	return d, nil
}

// BusinessDaysBetween counts business days in [from, to). The result is
// negative when to is before from.
func (c *Calendar) BusinessDaysBetween(from, to time.Time) int {
	a, b := DateOf(from), DateOf(to)
	sign := 1
	if b.Before(a) {
		a, b = b, a
		sign = -1
	}
	n := 0
	for d := a; d.Before(b); d = d.AddDate(0, 0, 1) {
		if c.IsBusinessDay(d) {
			n++
		}
	}
	return sign * n
}

// BusinessDaysInMonth lists the business days of the given month.
func (c *Calendar) BusinessDaysInMonth(year int, month time.Month) []time.Time {
	var out []time.Time
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if c.IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// LastBusinessDayOfMonth returns the last business day of the given month,
// or ErrNoBusinessDay when the month has none.
func (c *Calendar) LastBusinessDayOfMonth(year int, month time.Month) (time.Time, error) {
	firstOfNext := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	d, err := c.PrevBusinessDay(firstOfNext)
	if err != nil {
		return time.Time{}, err
	}
	if d.Year() != year || d.Month() != month {
		return time.Time{}, fmt.Errorf("%w: %d-%02d", ErrNoBusinessDay, year, int(month))
	}
	return d, nil
}

// BusinessDaysInYear counts the business days of year.
func (c *Calendar) BusinessDaysInYear(year int) int {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return c.BusinessDaysBetween(start, start.AddDate(1, 0, 0))
}
