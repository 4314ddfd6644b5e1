package dto

import (
	"github.com/MiroBartanus/business-days-sk/internal/domain/models"
)

// DateLayout is the wire format of every date in the API.
const DateLayout = "2006-01-02"

// DayResponse represents the JSON returned by GET /api/v1/days/{date}
// and its next/prev/add variants.
type DayResponse struct {
	Date        string `json:"date" example:"2019-04-19"`
	Weekday     string `json:"weekday" example:"Friday"`
	Holiday     bool   `json:"holiday" example:"true"`
	HolidayName string `json:"holiday_name,omitempty" example:"Veľký piatok"`
	HolidayKind string `json:"holiday_kind,omitempty" example:"easter"`
	BusinessDay bool   `json:"business_day" example:"false"`
}

// NewDayResponse maps a models.Day to its API representation.
func NewDayResponse(d models.Day) DayResponse {
	return DayResponse{
		Date:        d.Date.Format(DateLayout),
		Weekday:     d.Weekday.String(),
		Holiday:     d.Holiday,
		HolidayName: d.HolidayName,
		HolidayKind: d.HolidayKind,
		BusinessDay: d.BusinessDay,
	}
}

// BusinessDaysResponse is returned by GET /api/v1/business-days.
type BusinessDaysResponse struct {
	From         string `json:"from" example:"2019-04-15"`
	To           string `json:"to" example:"2019-04-29"`
	BusinessDays int    `json:"business_days" example:"8"`
}
