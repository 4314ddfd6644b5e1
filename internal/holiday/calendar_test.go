package holiday

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustSlovak(t *testing.T, opts ...Option) *Calendar {
	t.Helper()
	c, err := NewSlovak(opts...)
	require.NoError(t, err)
	return c
}

func TestCalendar_IsHoliday_Concrete(t *testing.T) {
	c := mustSlovak(t)

	cases := []struct {
		day  time.Time
		want bool
	}{
		{date(2019, time.January, 1), true},
		{date(2019, time.November, 14), false},
		{date(2019, time.April, 19), true}, // Good Friday
		{date(2019, time.April, 21), false},
		{date(2019, time.April, 22), true}, // Easter Monday
		{date(2018, time.October, 30), true},
		{date(2019, time.October, 30), false},
		{date(2017, time.October, 30), false},
	}
	for _, tc := range cases {
		t.Run(tc.day.Format("2006-01-02"), func(t *testing.T) {
			assert.Equal(t, tc.want, c.IsHoliday(tc.day))
		})
	}
}

func TestCalendar_IgnoresTimeOfDayAndLocation(t *testing.T) {
	c := mustSlovak(t)
	loc := time.FixedZone("CET", 3600)

	assert.True(t, c.IsHoliday(time.Date(2019, 4, 19, 23, 59, 0, 0, loc)))
	assert.True(t, c.IsHoliday(time.Date(2019, 12, 24, 0, 30, 0, 0, loc)))
}

func TestCalendar_FeastRelativeEveryCachedYear(t *testing.T) {
	c := mustSlovak(t)

	for y := DefaultMinCachedYear; y < DefaultMaxCachedYear; y++ {
		feast, ok := c.Feast(y)
		require.True(t, ok)
		require.Equal(t, time.Sunday, feast.Weekday(), "year %d", y)

		friday := feast.AddDays(-2)
		require.Equal(t, time.Friday, friday.Weekday(), "year %d", y)
		require.True(t, c.IsHoliday(friday), "good friday %s", friday.Format("2006-01-02"))

		monday := feast.AddDays(1)
		require.Equal(t, time.Monday, monday.Weekday(), "year %d", y)
		require.True(t, c.IsHoliday(monday), "easter monday %s", monday.Format("2006-01-02"))

		require.Contains(t, []time.Month{time.March, time.April}, friday.Month())
		require.Contains(t, []time.Month{time.March, time.April}, monday.Month())
	}
}

func TestCalendar_Feast2019(t *testing.T) {
	c := mustSlovak(t)
	f, ok := c.Feast(2019)
	require.True(t, ok)
	assert.Equal(t, time.April, f.Month)
	assert.Equal(t, 21, f.Day)
}

func TestCalendar_OutOfRangeYearSkipsFeastRules(t *testing.T) {
	c := mustSlovak(t)

	_, ok := c.Feast(999)
	assert.False(t, ok)

	friday := ComputeFeast(999).AddDays(-2)
	assert.False(t, c.IsHoliday(friday))
	assert.True(t, c.IsHoliday(date(999, time.January, 1)))
	assert.True(t, c.IsHoliday(date(3001, time.December, 25)))
}

func TestCalendar_AddFixedHolidayIsRetroactive(t *testing.T) {
	c := mustSlovak(t)
	oct1 := date(2020, time.October, 1)
	past := date(1990, time.October, 1)

	require.True(t, c.IsBusinessDay(oct1))
	require.False(t, c.IsHoliday(past))

	require.NoError(t, c.AddFixedHoliday("01/10"))

	assert.False(t, c.IsBusinessDay(oct1))
	assert.True(t, c.IsHoliday(past))
	assert.True(t, c.IsHoliday(date(2150, time.October, 1)))

	h, ok := c.Lookup(oct1)
	require.True(t, ok)
	assert.Equal(t, KindCustom, h.Kind)
}

func TestCalendar_AddFixedHolidayRejectsMalformed(t *testing.T) {
	c := mustSlovak(t)
	before := len(c.Rules().FixedRules())

	for _, spec := range []string{"31/02", "1.10", "x/10", "10/"} {
		err := c.AddFixedHoliday(spec)
		assert.ErrorIs(t, err, ErrMalformedRule, spec)
	}
	assert.Len(t, c.Rules().FixedRules(), before)
}

func TestCalendar_IndependentInstances(t *testing.T) {
	a := mustSlovak(t)
	b := mustSlovak(t)

	require.NoError(t, a.AddHoliday(2, time.October, "local"))

	assert.True(t, a.IsHoliday(date(2019, time.October, 2)))
	assert.False(t, b.IsHoliday(date(2019, time.October, 2)))
}

func TestCalendar_EmptyCalendarKnowsNoHolidays(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.False(t, c.IsHoliday(date(2019, time.December, 25)))
	assert.Empty(t, c.Holidays(2019))
}

func TestCalendar_InvalidOptions(t *testing.T) {
	_, err := New(WithCacheRange(2250, 1750))
	assert.ErrorIs(t, err, ErrInvalidCacheRange)

	_, err = New(WithFixed(FixedRule{Day: 31, Month: time.June}))
	assert.ErrorIs(t, err, ErrMalformedRule)
}

func TestCalendar_Holidays2019(t *testing.T) {
	c := mustSlovak(t)

	want := []string{
		"2019-01-01",
		"2019-01-06",
		"2019-04-19",
		"2019-04-22",
		"2019-05-01",
		"2019-05-08",
		"2019-07-05",
		"2019-08-29",
		"2019-09-01",
		"2019-09-15",
		"2019-11-01",
		"2019-11-17",
		"2019-12-24",
		"2019-12-25",
		"2019-12-26",
	}

	var got []string
	for _, h := range c.Holidays(2019) {
		got = append(got, h.Date.Format("2006-01-02"))
		assert.NotEmpty(t, h.Name)
	}
	assert.Equal(t, want, got)
}

func TestCalendar_HolidaySets1970To2070(t *testing.T) {
	c := mustSlovak(t)
	fixed := []string{"01-01", "01-06", "05-01", "05-08", "07-05", "08-29", "09-01", "09-15", "11-01", "11-17", "12-24", "12-25", "12-26"}

	for y := 1970; y <= 2070; y++ {
		want := map[string]bool{}
		for _, md := range fixed {
			want[fmt.Sprintf("%d-%s", y, md)] = true
		}
		feast, ok := c.Feast(y)
		require.True(t, ok)
		want[feast.AddDays(-2).Format("2006-01-02")] = true
		want[feast.AddDays(1).Format("2006-01-02")] = true
		if y == 2018 {
			want["2018-10-30"] = true
		}

		got := c.Holidays(y)
		require.Len(t, got, len(want), "year %d", y)
		for _, h := range got {
			require.True(t, want[h.Date.Format("2006-01-02")], "unexpected holiday %s", h.Date.Format("2006-01-02"))
		}
	}
}

func TestCalendar_ObserverSeesCacheTraffic(t *testing.T) {
	obs := &countingObserver{}
	c := mustSlovak(t, WithObserver(obs), WithCacheRange(2000, 2100))

	c.IsHoliday(date(2019, time.April, 19))
	c.IsHoliday(date(2019, time.April, 22))
	c.IsHoliday(date(1950, time.April, 7))

	assert.EqualValues(t, 1, obs.misses.Load())
	assert.EqualValues(t, 1, obs.hits.Load())
	assert.EqualValues(t, 1, obs.bypasses.Load())
}

func TestOffsetWeekday(t *testing.T) {
	assert.Equal(t, time.Friday, offsetWeekday(-2))
	assert.Equal(t, time.Monday, offsetWeekday(1))
	assert.Equal(t, time.Thursday, offsetWeekday(39))
	assert.Equal(t, time.Sunday, offsetWeekday(-49))
}
