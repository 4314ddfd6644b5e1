package holiday

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Kind classifies where a holiday comes from.
type Kind string

const (
	KindFixed  Kind = "fixed"
	KindFeast  Kind = "easter"
	KindOneOff Kind = "one-off"
	KindCustom Kind = "custom"
)

// FixedRule is a holiday recurring on the same day/month every year.
type FixedRule struct {
	Day   int
	Month time.Month
	Name  string
	Kind  Kind
}

// OneOffRule is a holiday declared for a single date only.
type OneOffRule struct {
	Year  int
	Month time.Month
	Day   int
	Name  string
}

// FeastRule is a holiday Offset days away from Easter Sunday of the same year.
type FeastRule struct {
	Offset int
	Name   string
}

// ParseDayMonth parses a "DD/MM" specification (leading zeros optional).
func ParseDayMonth(spec string) (day int, month time.Month, err error) {
	parts := strings.Split(strings.TrimSpace(spec), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q is not in DD/MM form", ErrMalformedRule, spec)
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: day in %q: %v", ErrMalformedRule, spec, err)
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month in %q: %v", ErrMalformedRule, spec, err)
	}
	if err := validateDayMonth(d, time.Month(m)); err != nil {
		return 0, 0, err
	}
	return d, time.Month(m), nil
}

// validateDayMonth accepts any day/month that exists in some year,
// 29 February included.
func validateDayMonth(day int, month time.Month) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d", ErrMalformedRule, int(month))
	}
	// 2000 is a leap year, so 29/02 survives the round trip.
	t := time.Date(2000, month, day, 0, 0, 0, 0, time.UTC)
	if day < 1 || t.Month() != month || t.Day() != day {
		return fmt.Errorf("%w: day %d does not exist in %s", ErrMalformedRule, day, month)
	}
	return nil
}

// RuleSet holds the fixed, one-off and feast-relative rules of a calendar.
// Appends are visible to every read that starts after them.
type RuleSet struct {
	mu     sync.RWMutex
	fixed  []FixedRule
	oneOff []OneOffRule
	feast  []FeastRule
}

// AddFixed appends a day/month rule. Duplicates are allowed.
func (r *RuleSet) AddFixed(rule FixedRule) error {
	if err := validateDayMonth(rule.Day, rule.Month); err != nil {
		return err
	}
	if rule.Kind == "" {
		rule.Kind = KindFixed
	}
	r.mu.Lock()
	r.fixed = append(r.fixed, rule)
	r.mu.Unlock()
	return nil
}

// AddOneOff appends an exact-date rule.
func (r *RuleSet) AddOneOff(rule OneOffRule) error {
	t := time.Date(rule.Year, rule.Month, rule.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != rule.Year || t.Month() != rule.Month || t.Day() != rule.Day {
		return fmt.Errorf("%w: %04d-%02d-%02d is not a date", ErrMalformedRule, rule.Year, int(rule.Month), rule.Day)
	}
	r.mu.Lock()
	r.oneOff = append(r.oneOff, rule)
	r.mu.Unlock()
	return nil
}

// AddFeastRelative appends an Easter-relative rule.
func (r *RuleSet) AddFeastRelative(rule FeastRule) {
	r.mu.Lock()
	r.feast = append(r.feast, rule)
	r.mu.Unlock()
}

// MatchFixed returns the first fixed rule with t's day and month.
func (r *RuleSet) MatchFixed(t time.Time) (FixedRule, bool) {
	_, m, d := t.Date()
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rule := range r.fixed {
		if rule.Day == d && rule.Month == m {
			return rule, true
		}
	}
	return FixedRule{}, false
}

// MatchOneOff returns the one-off rule for t's exact date.
func (r *RuleSet) MatchOneOff(t time.Time) (OneOffRule, bool) {
	y, m, d := t.Date()
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rule := range r.oneOff {
		if rule.Year == y && rule.Month == m && rule.Day == d {
			return rule, true
		}
	}
	return OneOffRule{}, false
}

// FeastRules returns a copy of the feast-relative rules.
func (r *RuleSet) FeastRules() []FeastRule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]FeastRule(nil), r.feast...)
}

// FixedRules returns a copy of the fixed rules (custom ones included).
func (r *RuleSet) FixedRules() []FixedRule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]FixedRule(nil), r.fixed...)
}

// OneOffRules returns a copy of the one-off rules.
func (r *RuleSet) OneOffRules() []OneOffRule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]OneOffRule(nil), r.oneOff...)
}
