package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusinessDay_2019Count(t *testing.T) {
	c := mustSlovak(t)
	assert.Equal(t, 250, c.BusinessDaysInYear(2019))
}

func TestIsBusinessDay_YearCounts(t *testing.T) {
	c := mustSlovak(t)
	want := map[int]int{
		2010: 251, 2011: 250, 2012: 250, 2013: 250, 2014: 248,
		2015: 250, 2016: 250, 2017: 247, 2018: 249, 2019: 250,
		2020: 251, 2021: 251, 2022: 250, 2023: 247, 2024: 251,
		2025: 248, 2026: 250, 2027: 251, 2028: 247, 2029: 250,
		2030: 250,
	}
	for year, bd := range want {
		assert.Equal(t, bd, c.BusinessDaysInYear(year), "year %d", year)
	}
}

func TestIsBusinessDay_Weekends(t *testing.T) {
	c := mustSlovak(t)
	assert.False(t, c.IsBusinessDay(date(2019, time.November, 16))) // Saturday
	assert.False(t, c.IsBusinessDay(date(2019, time.November, 17))) // Sunday and a holiday
	assert.True(t, c.IsBusinessDay(date(2019, time.November, 18)))
	assert.True(t, IsWeekend(date(2019, time.November, 16)))
	assert.False(t, IsWeekend(date(2019, time.November, 15)))
}

func TestPrevBusinessDay_BeforeEaster(t *testing.T) {
	c := mustSlovak(t)

	easter, ok := c.Feast(2019)
	require.True(t, ok)
	prev, err := c.PrevBusinessDay(easter.Time())
	require.NoError(t, err)
	assert.Equal(t, date(2019, time.April, 18), prev)
	assert.Equal(t, time.Thursday, prev.Weekday())

	for y := 1750; y < 2250; y++ {
		easter, _ := c.Feast(y)
		prev, err := c.PrevBusinessDay(easter.Time())
		require.NoError(t, err)
		require.False(t, c.IsHoliday(prev))
		require.Equal(t, easter.AddDays(-3), prev, "year %d", y)
	}
}

func TestNextBusinessDay_AfterEaster(t *testing.T) {
	c := mustSlovak(t)

	easter, ok := c.Feast(2019)
	require.True(t, ok)
	next, err := c.NextBusinessDay(easter.Time())
	require.NoError(t, err)
	assert.Equal(t, date(2019, time.April, 23), next)
	assert.Equal(t, time.Tuesday, next.Weekday())

	for y := 1200; y < 2200; y++ {
		easter, _ := c.Feast(y)
		next, err := c.NextBusinessDay(easter.Time())
		require.NoError(t, err)
		require.False(t, c.IsHoliday(next))
		require.Equal(t, easter.AddDays(2), next, "year %d", y)
	}
}

func TestBusinessDayWalk_StopsAtSupportedRange(t *testing.T) {
	c := mustSlovak(t)

	_, err := c.NextBusinessDay(date(3000, time.December, 31))
	assert.ErrorIs(t, err, ErrYearOutOfRange)
	_, err = c.PrevBusinessDay(date(1000, time.January, 1))
	assert.ErrorIs(t, err, ErrYearOutOfRange)
	_, err = c.AddBusinessDays(date(3000, time.December, 29), 5)
	assert.ErrorIs(t, err, ErrYearOutOfRange)
}

func TestBusinessDayWalk_EveryDayAHoliday(t *testing.T) {
	c := mustSlovak(t)
	require.NoError(t, c.AddHoliday(29, time.February, "leap"))
	for d := date(2001, time.January, 1); d.Year() == 2001; d = d.AddDate(0, 0, 1) {
		require.NoError(t, c.AddHoliday(d.Day(), d.Month(), "every day"))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		from := date(2019, time.January, 1)

		_, err := c.NextBusinessDay(from)
		assert.ErrorIs(t, err, ErrNoBusinessDay)
		_, err = c.PrevBusinessDay(from)
		assert.ErrorIs(t, err, ErrNoBusinessDay)
		_, err = c.AddBusinessDays(from, 3)
		assert.ErrorIs(t, err, ErrNoBusinessDay)
		_, err = c.LastBusinessDayOfMonth(2019, time.May)
		assert.ErrorIs(t, err, ErrNoBusinessDay)
		// near the upper bound the range check wins
		_, err = c.NextBusinessDay(date(2998, time.June, 1))
		assert.ErrorIs(t, err, ErrYearOutOfRange)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("business-day walk did not terminate")
	}
}

func TestLastBusinessDayOfMonth(t *testing.T) {
	c := mustSlovak(t)

	for d := date(2019, time.January, 1); d.Year() == 2019; d = d.AddDate(0, 0, 1) {
		last, err := c.LastBusinessDayOfMonth(d.Year(), d.Month())
		require.NoError(t, err)
		require.True(t, c.IsBusinessDay(last))
		require.Equal(t, d.Month(), last.Month())

		next, err := c.NextBusinessDay(last)
		require.NoError(t, err)
		require.NotEqual(t, last.Month(), next.Month(), "after %s", last.Format("2006-01-02"))
	}

	// 2019-12-31 is a Tuesday, 24-26 are holidays
	last, err := c.LastBusinessDayOfMonth(2019, time.December)
	require.NoError(t, err)
	assert.Equal(t, date(2019, time.December, 31), last)
	// 2019-08-31 is a Saturday, 29 is a holiday
	last, err = c.LastBusinessDayOfMonth(2019, time.August)
	require.NoError(t, err)
	assert.Equal(t, date(2019, time.August, 30), last)
}

func TestAddBusinessDays(t *testing.T) {
	c := mustSlovak(t)
	thu := date(2019, time.April, 18)

	add := func(d time.Time, n int) time.Time {
		t.Helper()
		out, err := c.AddBusinessDays(d, n)
		require.NoError(t, err)
		return out
	}
	assert.Equal(t, date(2019, time.April, 23), add(thu, 1))
	assert.Equal(t, date(2019, time.April, 24), add(thu, 2))
	assert.Equal(t, date(2019, time.April, 17), add(thu, -1))
	assert.Equal(t, thu, add(thu, 0))
	assert.Equal(t, thu, add(add(thu, 10), -10))
}

func TestBusinessDaysBetween(t *testing.T) {
	c := mustSlovak(t)
	from := date(2019, time.April, 15)
	to := date(2019, time.April, 29)

	// 15-18, 23-26
	assert.Equal(t, 8, c.BusinessDaysBetween(from, to))
	assert.Equal(t, -8, c.BusinessDaysBetween(to, from))
	assert.Equal(t, 0, c.BusinessDaysBetween(from, from))
}

func TestBusinessDaysInMonth(t *testing.T) {
	c := mustSlovak(t)
	days := c.BusinessDaysInMonth(2019, time.December)

	// 22 weekdays minus 24, 25, 26
	assert.Len(t, days, 19)
	for _, d := range days {
		assert.Equal(t, time.December, d.Month())
		assert.True(t, c.IsBusinessDay(d))
	}
}
