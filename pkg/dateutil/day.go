// Package dateutil provides calendar-day helpers for daily time series.
// All engine dates are normalized to UTC midnight so that map keys and
// comparisons operate on whole days.
package dateutil

import "time"

// hoursPerDay is the number of hours in a calendar day.
const hoursPerDay = 24

// Day truncates t to UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDay returns the calendar day after d.
func NextDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}

// DaysBetween returns the number of whole days from a to b, inclusive of
// both endpoints. Returns 0 when b is before a.
func DaysBetween(a, b time.Time) int {
	a, b = Day(a), Day(b)
	if b.Before(a) {
		return 0
	}

	return int(b.Sub(a).Hours()/hoursPerDay) + 1
}

// Range returns every calendar day from first to last, inclusive, in
// ascending order. Returns nil when last is before first.
func Range(first, last time.Time) []time.Time {
	first, last = Day(first), Day(last)
	if last.Before(first) {
		return nil
	}

	days := make([]time.Time, 0, DaysBetween(first, last))
	for d := first; !d.After(last); d = NextDay(d) {
		days = append(days, d)
	}

	return days
}

// WeekStart returns the Monday at or before d, at UTC midnight.
func WeekStart(d time.Time) time.Time {
	d = Day(d)

	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	return d.AddDate(0, 0, -offset)
}

// MaxTime returns the later of a and b.
func MaxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}
