// Package holiday decides whether a date is a public holiday or a business
// day. A Calendar composes four rule sources: one-off dates, rules relative
// to Easter Sunday, fixed day/month rules, and custom day/month rules added
// at runtime.
//
// Dates are plain time.Time values; only their calendar day (in their own
// location) matters. Months are 1-based (time.Month) and weekdays follow
// time.Weekday, where Sunday is 0.
package holiday

import (
	"time"

	"github.com/rs/zerolog"
)

// Holiday is a resolved holiday on a concrete date.
type Holiday struct {
	Date time.Time
	Name string
	Kind Kind
}

// Calendar is a self-contained holiday configuration: its own rules and its
// own feast cache. Several calendars can coexist. Safe for concurrent use.
type Calendar struct {
	rules *RuleSet
	cache *FeastCache
	log   zerolog.Logger
}

type settings struct {
	minCached, maxCached int
	fixed                []FixedRule
	oneOff               []OneOffRule
	feast                []FeastRule
	observer             CacheObserver
	log                  zerolog.Logger
}

// Option configures a Calendar built by New.
type Option func(*settings)

// WithCacheRange sets the inclusive range of years whose feast is memoized.
func WithCacheRange(min, max int) Option {
	return func(s *settings) { s.minCached, s.maxCached = min, max }
}

// WithFixed seeds fixed day/month rules.
func WithFixed(rules ...FixedRule) Option {
	return func(s *settings) { s.fixed = append(s.fixed, rules...) }
}

// WithOneOff seeds exact-date rules.
func WithOneOff(rules ...OneOffRule) Option {
	return func(s *settings) { s.oneOff = append(s.oneOff, rules...) }
}

// WithFeastRelative seeds Easter-relative rules.
func WithFeastRelative(rules ...FeastRule) Option {
	return func(s *settings) { s.feast = append(s.feast, rules...) }
}

// WithObserver reports feast cache hits, misses and bypasses to o.
func WithObserver(o CacheObserver) Option {
	return func(s *settings) { s.observer = o }
}

// WithLogger sets the logger used for debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.log = l }
}

// New builds a Calendar. Without options it knows no holidays at all.
func New(opts ...Option) (*Calendar, error) {
	s := settings{
		minCached: DefaultMinCachedYear,
		maxCached: DefaultMaxCachedYear,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	cache, err := NewFeastCache(s.minCached, s.maxCached)
	if err != nil {
		return nil, err
	}
	cache.SetObserver(s.observer)

	rules := &RuleSet{}
	for _, r := range s.fixed {
		if err := rules.AddFixed(r); err != nil {
			return nil, err
		}
	}
	for _, r := range s.oneOff {
		if err := rules.AddOneOff(r); err != nil {
			return nil, err
		}
	}
	for _, r := range s.feast {
		rules.AddFeastRelative(r)
	}

	return &Calendar{rules: rules, cache: cache, log: s.log}, nil
}

// Rules exposes the calendar's rule set.
func (c *Calendar) Rules() *RuleSet { return c.rules }

// Cache exposes the calendar's feast cache.
func (c *Calendar) Cache() *FeastCache { return c.cache }

// Feast returns Easter Sunday of year through the cache. ok is false for
// years outside [MinYear, MaxYear].
func (c *Calendar) Feast(year int) (FeastDate, bool) {
	return c.cache.Get(year)
}

// AddFixedHoliday registers a custom "DD/MM" holiday valid in every year.
func (c *Calendar) AddFixedHoliday(spec string) error {
	day, month, err := ParseDayMonth(spec)
	if err != nil {
		return err
	}
	return c.AddHoliday(day, month, "")
}

// AddHoliday registers a custom day/month holiday valid in every year,
// past years included.
func (c *Calendar) AddHoliday(day int, month time.Month, name string) error {
	if err := c.rules.AddFixed(FixedRule{Day: day, Month: month, Name: name, Kind: KindCustom}); err != nil {
		return err
	}
	c.log.Debug().Int("day", day).Int("month", int(month)).Str("name", name).Msg("custom holiday added")
	return nil
}

// IsHoliday reports whether t falls on a holiday.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.Lookup(t)
	return ok
}

// Lookup resolves the holiday on t's calendar day, if any.
//
// Order: one-off dates, Easter-relative rules, fixed and custom rules.
// When the year has no computable feast the Easter-relative rules are
// skipped and only the other sources answer.
func (c *Calendar) Lookup(t time.Time) (Holiday, bool) {
	d := DateOf(t)

	if r, ok := c.rules.MatchOneOff(d); ok {
		return Holiday{Date: d, Name: r.Name, Kind: KindOneOff}, true
	}
	if h, ok := c.matchFeast(d); ok {
		return h, true
	}
	if r, ok := c.rules.MatchFixed(d); ok {
		return Holiday{Date: d, Name: r.Name, Kind: r.Kind}, true
	}
	return Holiday{}, false
}

func (c *Calendar) matchFeast(d time.Time) (Holiday, bool) {
	var (
		feast  FeastDate
		known  bool
		loaded bool
	)
	for _, rule := range c.rules.FeastRules() {
		// feast is a Sunday, so feast+offset can only land on this weekday
		if offsetWeekday(rule.Offset) != d.Weekday() {
			continue
		}
		if !loaded {
			feast, known = c.cache.Get(d.Year())
			loaded = true
			if !known {
				c.log.Debug().Int("year", d.Year()).Msg("feast unavailable, easter rules skipped")
				return Holiday{}, false
			}
		}
		if feast.AddDays(rule.Offset).Equal(d) {
			return Holiday{Date: d, Name: rule.Name, Kind: KindFeast}, true
		}
	}
	return Holiday{}, false
}

// Holidays lists every holiday of year in date order.
func (c *Calendar) Holidays(year int) []Holiday {
	var out []Holiday
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
		if h, ok := c.Lookup(d); ok {
			out = append(out, h)
		}
	}
	return out
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func offsetWeekday(offset int) time.Weekday {
	return time.Weekday(((offset % 7) + 7) % 7)
}
