// Package timeline derives the daily analysis range from the baseline
// schedule. The range spans from the earliest task start to the latest task
// end, extended to an as-of date when current status is being computed.
package timeline

import (
	"time"

	"github.com/chantier-labs/avancement/internal/schedule"
	"github.com/chantier-labs/avancement/pkg/dateutil"
)

// Build returns one entry per calendar day, ascending, from the earliest
// task start to the latest task end, both inclusive. Fails with
// schedule.ErrEmptySchedule when no tasks are given.
func Build(tasks []schedule.Task) ([]time.Time, error) {
	return BuildAsOf(tasks, time.Time{})
}

// BuildAsOf is Build with the range end extended to asOf when asOf falls
// after the last scheduled task end. A zero asOf leaves the range at the
// baseline end.
func BuildAsOf(tasks []schedule.Task, asOf time.Time) ([]time.Time, error) {
	if len(tasks) == 0 {
		return nil, schedule.ErrEmptySchedule
	}

	first := dateutil.Day(tasks[0].Start)
	last := dateutil.Day(tasks[0].End)

	for _, t := range tasks[1:] {
		start := dateutil.Day(t.Start)
		if start.Before(first) {
			first = start
		}

		end := dateutil.Day(t.End)
		if end.After(last) {
			last = end
		}
	}

	if !asOf.IsZero() {
		last = dateutil.MaxTime(last, dateutil.Day(asOf))
	}

	return dateutil.Range(first, last), nil
}
