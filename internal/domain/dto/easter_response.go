package dto

import "github.com/MiroBartanus/business-days-sk/internal/domain/models"

// EasterResponse is returned by GET /api/v1/easter/{year}.
type EasterResponse struct {
	Year         int    `json:"year" example:"2019"`
	EasterSunday string `json:"easter_sunday" example:"2019-04-21"`
	GoodFriday   string `json:"good_friday" example:"2019-04-19"`
	EasterMonday string `json:"easter_monday" example:"2019-04-22"`
}

// NewEasterResponse maps a models.Easter to its API representation.
func NewEasterResponse(e models.Easter) EasterResponse {
	return EasterResponse{
		Year:         e.Year,
		EasterSunday: e.Sunday.Format(DateLayout),
		GoodFriday:   e.GoodFriday.Format(DateLayout),
		EasterMonday: e.EasterMonday.Format(DateLayout),
	}
}
