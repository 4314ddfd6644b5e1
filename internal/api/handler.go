package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MiroBartanus/business-days-sk/internal/domain/dto"
	"github.com/MiroBartanus/business-days-sk/internal/middleware"
	"github.com/MiroBartanus/business-days-sk/internal/service"
)

// Handler provides HTTP handlers for the business-day endpoints.
//
// Responsibilities:
//   - Validate path and query parameters
//   - Call the calendar service
//   - Translate results into response DTOs
//   - Map service errors to HTTP status codes (400, 422, 503, 500)
type Handler struct {
	svc service.CalendarService
	now func() time.Time
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.CalendarService) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

// GetDay godoc
// @Summary      Classify a day
// @Description  Tells whether the date is a Slovak holiday and/or a business day
// @Tags         days
// @Produce      json
// @Param        date  path      string  true  "Date in YYYY-MM-DD" example(2019-04-19)
// @Success      200   {object}  dto.DayResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422   {object}  dto.ErrorResponse  "Year out of range"
// @Router       /api/v1/days/{date} [get]
func (h *Handler) GetDay(c *gin.Context) {
	d, ok := parseDate(c, c.Param("date"), "date")
	if !ok {
		return
	}
	day, err := h.svc.Day(c.Request.Context(), d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDayResponse(day))
}

// GetNextBusinessDay godoc
// @Summary      Next business day
// @Description  Returns the first business day strictly after the date
// @Tags         days
// @Produce      json
// @Param        date  path      string  true  "Date in YYYY-MM-DD" example(2019-04-18)
// @Success      200   {object}  dto.DayResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422   {object}  dto.ErrorResponse  "Year out of range or no business day"
// @Router       /api/v1/days/{date}/next [get]
func (h *Handler) GetNextBusinessDay(c *gin.Context) {
	d, ok := parseDate(c, c.Param("date"), "date")
	if !ok {
		return
	}
	day, err := h.svc.NextBusinessDay(c.Request.Context(), d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDayResponse(day))
}

// GetPrevBusinessDay godoc
// @Summary      Previous business day
// @Description  Returns the last business day strictly before the date
// @Tags         days
// @Produce      json
// @Param        date  path      string  true  "Date in YYYY-MM-DD" example(2019-04-23)
// @Success      200   {object}  dto.DayResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422   {object}  dto.ErrorResponse  "Year out of range or no business day"
// @Router       /api/v1/days/{date}/prev [get]
func (h *Handler) GetPrevBusinessDay(c *gin.Context) {
	d, ok := parseDate(c, c.Param("date"), "date")
	if !ok {
		return
	}
	day, err := h.svc.PrevBusinessDay(c.Request.Context(), d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDayResponse(day))
}

// AddBusinessDays godoc
// @Summary      Shift by business days
// @Description  Moves n business days away from the date; negative n goes back
// @Tags         days
// @Produce      json
// @Param        date  path      string  true  "Date in YYYY-MM-DD" example(2019-04-18)
// @Param        n     query     int     true  "Business days to add" example(3)
// @Success      200   {object}  dto.DayResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422   {object}  dto.ErrorResponse  "Year out of range or no business day"
// @Router       /api/v1/days/{date}/add [get]
func (h *Handler) AddBusinessDays(c *gin.Context) {
	d, ok := parseDate(c, c.Param("date"), "date")
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(c.Query("n")))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "n must be an integer", err)
		return
	}
	day, err := h.svc.AddBusinessDays(c.Request.Context(), d, n)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDayResponse(day))
}

// CountBusinessDays godoc
// @Summary      Count business days
// @Description  Counts business days in [from, to); negative when to is before from
// @Tags         days
// @Produce      json
// @Param        from  query     string  true  "Start date (inclusive) in YYYY-MM-DD" example(2019-04-15)
// @Param        to    query     string  true  "End date (exclusive) in YYYY-MM-DD" example(2019-04-29)
// @Success      200   {object}  dto.BusinessDaysResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422   {object}  dto.ErrorResponse  "Year out of range"
// @Router       /api/v1/business-days [get]
func (h *Handler) CountBusinessDays(c *gin.Context) {
	from, ok := parseDate(c, c.Query("from"), "from")
	if !ok {
		return
	}
	to, ok := parseDate(c, c.Query("to"), "to")
	if !ok {
		return
	}
	n, err := h.svc.CountBusinessDays(c.Request.Context(), from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BusinessDaysResponse{
		From:         from.Format(dto.DateLayout),
		To:           to.Format(dto.DateLayout),
		BusinessDays: n,
	})
}

// GetEaster godoc
// @Summary      Easter dates
// @Description  Easter Sunday of the year with Good Friday and Easter Monday
// @Tags         holidays
// @Produce      json
// @Param        year  path      int  true  "Year between 1000 and 3000" example(2019)
// @Success      200   {object}  dto.EasterResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422   {object}  dto.ErrorResponse  "Year out of range"
// @Router       /api/v1/easter/{year} [get]
func (h *Handler) GetEaster(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "year must be an integer", err)
		return
	}
	e, err := h.svc.Easter(c.Request.Context(), year)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewEasterResponse(e))
}

// ListHolidays godoc
// @Summary      List holidays
// @Description  Every holiday of the year in date order; defaults to the current year
// @Tags         holidays
// @Produce      json
// @Param        year  query     int  false  "Year between 1000 and 3000" example(2019)
// @Success      200   {object}  dto.HolidayListResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422   {object}  dto.ErrorResponse  "Year out of range"
// @Router       /api/v1/holidays [get]
func (h *Handler) ListHolidays(c *gin.Context) {
	year := h.now().Year()
	if s := strings.TrimSpace(c.Query("year")); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "year must be an integer", err)
			return
		}
		year = y
	}
	hs, err := h.svc.Holidays(c.Request.Context(), year)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewHolidayListResponse(year, hs))
}

// AddHoliday godoc
// @Summary      Add a custom holiday
// @Description  Stores a DD/MM holiday valid in every year, past years included
// @Tags         holidays
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddHolidayRequest  true  "Holiday"
// @Success      201   {object}  dto.CustomHolidayResponse
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/holidays [post]
func (h *Handler) AddHoliday(c *gin.Context) {
	var req dto.AddHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	stored, err := h.svc.AddCustomHoliday(c.Request.Context(), req.Date, req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCustomHolidayResponse(stored))
}

func parseDate(c *gin.Context, s, field string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, field+" is required", nil)
		return time.Time{}, false
	}
	d, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid "+field+" format, expected YYYY-MM-DD", err)
		return time.Time{}, false
	}
	return d, true
}

func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, service.ErrYearOutOfRange):
		middleware.AbortWithError(c, http.StatusUnprocessableEntity, "year out of supported range", err)
	case errors.Is(err, service.ErrNoBusinessDay):
		middleware.AbortWithError(c, http.StatusUnprocessableEntity, "no business day in reach", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		middleware.AbortWithError(c, http.StatusServiceUnavailable, "request timed out", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "internal error", err)
	}
}
