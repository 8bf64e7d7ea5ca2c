// Package streak computes habit streaks from completion history.
//
// All functions are pure: the reference time ("now") is always passed in by
// the caller, never read from the system clock, so results are deterministic
// and testable. Completions are deduplicated into period keys first — two
// gym visits on the same day are one daily completion.
package streak

import (
	"fmt"
	"time"

	"github.com/mfriesen/tend/internal/habit"
)

// PeriodKey identifies one period of a habit's schedule: a calendar day, an
// ISO-8601 week, or a calendar month. Keys are comparable values and hold
// the canonical start date of the period (the day itself, the week's Monday,
// or the first of the month), always in UTC.
type PeriodKey struct {
	periodicity habit.Periodicity
	year        int
	month       time.Month
	day         int
}

// NewPeriodKey maps a timestamp to its period key under the given periodicity.
func NewPeriodKey(t time.Time, p habit.Periodicity) (PeriodKey, error) {
	t = t.UTC()
	switch p {
	case habit.Daily:
		return PeriodKey{p, t.Year(), t.Month(), t.Day()}, nil
	case habit.Weekly:
		monday := weekStart(t)
		return PeriodKey{p, monday.Year(), monday.Month(), monday.Day()}, nil
	case habit.Monthly:
		return PeriodKey{p, t.Year(), t.Month(), 1}, nil
	default:
		return PeriodKey{}, fmt.Errorf("%w: %q", habit.ErrInvalidPeriodicity, p)
	}
}

// weekStart returns the Monday 00:00 UTC of the ISO week containing t.
// ISO weeks are identified by their Monday-aligned start date rather than a
// (year, week) pair: two dates are in consecutive ISO weeks iff their week
// starts are exactly 7 days apart, which stays correct across the year
// boundary where week numbers reset.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday → 7 in ISO numbering
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// Start returns the first day of the period at midnight UTC.
func (k PeriodKey) Start() time.Time {
	return time.Date(k.year, k.month, k.day, 0, 0, 0, 0, time.UTC)
}

// Periodicity returns the granularity this key was derived under.
func (k PeriodKey) Periodicity() habit.Periodicity {
	return k.periodicity
}

// Prev returns the immediately preceding period key.
//
// Weekly keys step back 7 calendar days and monthly keys step back from the
// first of the month, so variable month lengths and the ISO year-boundary
// week renumbering can't skew the result.
func (k PeriodKey) Prev() PeriodKey {
	var t time.Time
	switch k.periodicity {
	case habit.Weekly:
		t = k.Start().AddDate(0, 0, -7)
	case habit.Monthly:
		t = k.Start().AddDate(0, 0, -1) // last day of the previous month
	default:
		t = k.Start().AddDate(0, 0, -1)
	}
	prev, _ := NewPeriodKey(t, k.periodicity)
	return prev
}

// Follows reports whether k is the period immediately after prev.
func (k PeriodKey) Follows(prev PeriodKey) bool {
	return k.Prev() == prev
}

// Before reports whether k is chronologically before other.
func (k PeriodKey) Before(other PeriodKey) bool {
	return k.Start().Before(other.Start())
}

// String renders the key for display: "2024-01-05" (daily), "2025-W01"
// (weekly, ISO year and week), "2024-01" (monthly).
func (k PeriodKey) String() string {
	switch k.periodicity {
	case habit.Weekly:
		isoYear, isoWeek := k.Start().ISOWeek()
		return fmt.Sprintf("%d-W%02d", isoYear, isoWeek)
	case habit.Monthly:
		return k.Start().Format("2006-01")
	default:
		return k.Start().Format("2006-01-02")
	}
}
