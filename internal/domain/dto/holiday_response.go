package dto

import (
	"github.com/MiroBartanus/business-days-sk/internal/domain/models"
	"github.com/MiroBartanus/business-days-sk/internal/holiday"
)

// HolidayResponse is one entry of HolidayListResponse.
type HolidayResponse struct {
	Date string `json:"date" example:"2019-12-24"`
	Name string `json:"name" example:"Štedrý deň"`
	Kind string `json:"kind" example:"fixed"`
}

// HolidayListResponse is returned by GET /api/v1/holidays?year=.
type HolidayListResponse struct {
	Year     int               `json:"year" example:"2019"`
	Count    int               `json:"count" example:"15"`
	Holidays []HolidayResponse `json:"holidays"`
}

// NewHolidayListResponse maps the holidays of year to the API representation.
func NewHolidayListResponse(year int, hs []holiday.Holiday) HolidayListResponse {
	out := HolidayListResponse{Year: year, Count: len(hs), Holidays: make([]HolidayResponse, 0, len(hs))}
	for _, h := range hs {
		out.Holidays = append(out.Holidays, HolidayResponse{
			Date: h.Date.Format(DateLayout),
			Name: h.Name,
			Kind: string(h.Kind),
		})
	}
	return out
}

// AddHolidayRequest is the body of POST /api/v1/holidays.
type AddHolidayRequest struct {
	Date string `json:"date" binding:"required" example:"01/10"` // DD/MM
	Name string `json:"name" example:"Company day"`
}

// CustomHolidayResponse is returned after a custom holiday was stored.
type CustomHolidayResponse struct {
	ID   int64  `json:"id" example:"1"`
	Date string `json:"date" example:"01/10"`
	Name string `json:"name" example:"Company day"`
}

// NewCustomHolidayResponse maps a stored custom holiday.
func NewCustomHolidayResponse(h models.CustomHoliday) CustomHolidayResponse {
	return CustomHolidayResponse{ID: h.ID, Date: h.Spec(), Name: h.Name}
}
