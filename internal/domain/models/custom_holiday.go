package models

import (
	"fmt"
	"time"
)

// CustomHoliday is a user-added day/month holiday, valid in every year.
//
// One row in the custom_holidays table. Month is 1-based.
type CustomHoliday struct {
	ID        int64
	Day       int
	Month     int
	Name      string
	CreatedAt time.Time
}

// Spec renders the holiday in "DD/MM" form.
func (h CustomHoliday) Spec() string {
	return fmt.Sprintf("%02d/%02d", h.Day, h.Month)
}
