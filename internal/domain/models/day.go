package models

import "time"

// Day is the classification of one calendar day.
//
// Fields:
//   - Date: the day, midnight UTC.
//   - Holiday: true when any holiday rule matches.
//   - HolidayName / HolidayKind: set when Holiday is true (kind is fixed, easter, one-off or custom).
//   - BusinessDay: neither a weekend day nor a holiday.
type Day struct {
	Date        time.Time
	Weekday     time.Weekday
	Holiday     bool
	HolidayName string
	HolidayKind string
	BusinessDay bool
}

// Easter groups Easter Sunday of a year with the holidays derived from it.
type Easter struct {
	Year         int
	Sunday       time.Time
	GoodFriday   time.Time
	EasterMonday time.Time
}
