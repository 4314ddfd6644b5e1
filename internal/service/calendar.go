package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/MiroBartanus/business-days-sk/internal/domain/models"
	"github.com/MiroBartanus/business-days-sk/internal/holiday"
	"github.com/MiroBartanus/business-days-sk/internal/ingestion"
	"github.com/MiroBartanus/business-days-sk/internal/logger"
	"github.com/MiroBartanus/business-days-sk/internal/storage"
)

const (
	// MaxShift bounds n in AddBusinessDays (about forty years).
	MaxShift = 10000
	// MaxSpanDays bounds the range counted by CountBusinessDays.
	MaxSpanDays = 100 * 366
	// MaxNameLength is the longest accepted custom holiday name, in runes.
	MaxNameLength = 100
)

var (
	// ErrInvalidInput marks a request the caller has to fix.
	ErrInvalidInput = errors.New("invalid input")
	// ErrYearOutOfRange marks a date or year outside the supported years.
	ErrYearOutOfRange = holiday.ErrYearOutOfRange
	// ErrNoBusinessDay marks a walk that found only holidays and weekends.
	ErrNoBusinessDay = holiday.ErrNoBusinessDay
)

// Observer receives the classification of every served day and the number
// of custom holidays added per source (api, import, replay).
// *metrics.Metrics satisfies it.
type Observer interface {
	ObserveLookup(result string)
	ObserveCustomHolidays(source string, n int)
}

// CalendarService defines the business-day operations exposed by the API and CLI.
type CalendarService interface {
	Day(ctx context.Context, date time.Time) (models.Day, error)
	NextBusinessDay(ctx context.Context, date time.Time) (models.Day, error)
	PrevBusinessDay(ctx context.Context, date time.Time) (models.Day, error)
	AddBusinessDays(ctx context.Context, date time.Time, n int) (models.Day, error)
	CountBusinessDays(ctx context.Context, from, to time.Time) (int, error)
	Easter(ctx context.Context, year int) (models.Easter, error)
	Holidays(ctx context.Context, year int) ([]holiday.Holiday, error)
	AddCustomHoliday(ctx context.Context, spec, name string) (models.CustomHoliday, error)
	LoadCustomHolidays(ctx context.Context) (int, error)
	ImportCustomHolidays(ctx context.Context, dir string, parallel int) (int, error)
}

type calendarService struct {
	cal  *holiday.Calendar
	repo storage.CustomHolidayRepository
	obs  Observer
	log  zerolog.Logger
}

// NewCalendarService wires a calendar to the repository holding its custom
// holidays. obs may be nil.
func NewCalendarService(cal *holiday.Calendar, repo storage.CustomHolidayRepository, obs Observer) CalendarService {
	return &calendarService{cal: cal, repo: repo, obs: obs, log: logger.Component("service")}
}

func (s *calendarService) Day(_ context.Context, date time.Time) (models.Day, error) {
	if err := checkYear(date.Year()); err != nil {
		return models.Day{}, err
	}
	return s.classify(date), nil
}

func (s *calendarService) NextBusinessDay(ctx context.Context, date time.Time) (models.Day, error) {
	return s.shift(ctx, date, 1)
}

func (s *calendarService) PrevBusinessDay(ctx context.Context, date time.Time) (models.Day, error) {
	return s.shift(ctx, date, -1)
}

func (s *calendarService) AddBusinessDays(ctx context.Context, date time.Time, n int) (models.Day, error) {
	if n > MaxShift || n < -MaxShift {
		return models.Day{}, fmt.Errorf("%w: n must be within ±%d", ErrInvalidInput, MaxShift)
	}
	return s.shift(ctx, date, n)
}

// shift walks n business days one at a time so a canceled ctx stops it.
// The result must stay within the supported years.
func (s *calendarService) shift(ctx context.Context, date time.Time, n int) (models.Day, error) {
	if err := checkYear(date.Year()); err != nil {
		return models.Day{}, err
	}
	step := s.cal.NextBusinessDay
	if n < 0 {
		step, n = s.cal.PrevBusinessDay, -n
	}

	d := holiday.DateOf(date)
	for ; n > 0; n-- {
		if err := ctx.Err(); err != nil {
			return models.Day{}, err
		}
		var err error
		if d, err = step(d); err != nil {
			return models.Day{}, err
		}
	}
	if err := checkYear(d.Year()); err != nil {
		return models.Day{}, err
	}
	return s.classify(d), nil
}

func (s *calendarService) CountBusinessDays(_ context.Context, from, to time.Time) (int, error) {
	if err := checkYear(from.Year()); err != nil {
		return 0, err
	}
	if err := checkYear(to.Year()); err != nil {
		return 0, err
	}
	span := holiday.DateOf(to).Sub(holiday.DateOf(from)).Hours() / 24
	if span > MaxSpanDays || span < -MaxSpanDays {
		return 0, fmt.Errorf("%w: range longer than %d days", ErrInvalidInput, MaxSpanDays)
	}
	return s.cal.BusinessDaysBetween(from, to), nil
}

func (s *calendarService) Easter(_ context.Context, year int) (models.Easter, error) {
	f, ok := s.cal.Feast(year)
	if !ok {
		return models.Easter{}, fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
	}
	return models.Easter{
		Year:         year,
		Sunday:       f.Time(),
		GoodFriday:   f.AddDays(-2),
		EasterMonday: f.AddDays(1),
	}, nil
}

func (s *calendarService) Holidays(_ context.Context, year int) ([]holiday.Holiday, error) {
	if err := checkYear(year); err != nil {
		return nil, err
	}
	return s.cal.Holidays(year), nil
}

// AddCustomHoliday validates spec ("DD/MM"), stores it and only then makes
// it visible to lookups. A storage failure leaves the calendar unchanged.
func (s *calendarService) AddCustomHoliday(ctx context.Context, spec, name string) (models.CustomHoliday, error) {
	day, month, err := holiday.ParseDayMonth(spec)
	if err != nil {
		return models.CustomHoliday{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		return models.CustomHoliday{}, fmt.Errorf("%w: name longer than %d characters", ErrInvalidInput, MaxNameLength)
	}

	h, err := s.repo.InsertCustomHoliday(ctx, models.CustomHoliday{Day: day, Month: int(month), Name: name})
	if err != nil {
		return models.CustomHoliday{}, fmt.Errorf("store custom holiday: %w", err)
	}
	if err := s.cal.AddHoliday(day, month, name); err != nil {
		return models.CustomHoliday{}, err
	}
	s.observeCustom("api", 1)
	s.log.Info().Int64("id", h.ID).Str("date", h.Spec()).Str("name", name).Msg("custom holiday added")
	return h, nil
}

// LoadCustomHolidays registers every stored custom holiday on the calendar.
// Called once at startup; returns how many were replayed.
func (s *calendarService) LoadCustomHolidays(ctx context.Context) (int, error) {
	rows, err := s.repo.ListCustomHolidays(ctx)
	if err != nil {
		return 0, fmt.Errorf("list custom holidays: %w", err)
	}
	for i, h := range rows {
		if err := s.cal.AddHoliday(h.Day, time.Month(h.Month), h.Name); err != nil {
			return i, fmt.Errorf("replay custom holiday %d (%s): %w", h.ID, h.Spec(), err)
		}
	}
	s.observeCustom("replay", len(rows))
	s.log.Info().Int("count", len(rows)).Msg("custom holidays loaded")
	return len(rows), nil
}

// ImportCustomHolidays stores and registers the holiday files of dir.
// Holidays of files imported before a failure are still counted.
func (s *calendarService) ImportCustomHolidays(ctx context.Context, dir string, parallel int) (int, error) {
	n, err := ingestion.ProcessDirectory(ctx, dir, s.repo, s.cal, parallel)
	s.observeCustom("import", n)
	return n, err
}

func (s *calendarService) observeCustom(source string, n int) {
	if s.obs != nil && n > 0 {
		s.obs.ObserveCustomHolidays(source, n)
	}
}

func (s *calendarService) classify(t time.Time) models.Day {
	d := holiday.DateOf(t)
	out := models.Day{Date: d, Weekday: d.Weekday()}
	if h, ok := s.cal.Lookup(d); ok {
		out.Holiday = true
		out.HolidayName = h.Name
		out.HolidayKind = string(h.Kind)
	}
	out.BusinessDay = !out.Holiday && !holiday.IsWeekend(d)

	if s.obs != nil {
		switch {
		case out.Holiday:
			s.obs.ObserveLookup("holiday")
		case out.BusinessDay:
			s.obs.ObserveLookup("business_day")
		default:
			s.obs.ObserveLookup("weekend")
		}
	}
	return out
}

func checkYear(year int) error {
	if year < holiday.MinYear || year > holiday.MaxYear {
		return fmt.Errorf("%w: %d not in %d..%d", ErrYearOutOfRange, year, holiday.MinYear, holiday.MaxYear)
	}
	return nil
}
