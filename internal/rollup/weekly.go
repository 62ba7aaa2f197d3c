// Package rollup resamples the daily analysis series to coarser cadences
// for period-over-period reporting.
package rollup

import (
	"time"

	"github.com/chantier-labs/avancement/internal/analysis"
	"github.com/chantier-labs/avancement/pkg/dateutil"
)

// WeekPoint is one Monday-anchored weekly sample of the analysis series.
// Progress values are cumulative, so each field carries the last daily
// value observed within the week, not a mean.
type WeekPoint struct {
	// WeekStart is the Monday beginning the week, UTC midnight.
	WeekStart time.Time `yaml:"week_start" json:"week_start"`

	// Planned is the last planned fraction of the week.
	Planned float64 `yaml:"planned" json:"planned"`

	// Actual is the last cumulative actual fraction of the week.
	Actual float64 `yaml:"actual" json:"actual"`

	// Deviation is the last daily deviation of the week.
	Deviation float64 `yaml:"deviation" json:"deviation"`

	// PlannedChange is Planned minus the previous week's Planned. Zero for
	// the first week.
	PlannedChange float64 `yaml:"planned_change" json:"planned_change"`

	// ActualChange is Actual minus the previous week's Actual.
	ActualChange float64 `yaml:"actual_change" json:"actual_change"`

	// DeviationChange is Deviation minus the previous week's Deviation.
	DeviationChange float64 `yaml:"deviation_change" json:"deviation_change"`
}

// Weekly buckets the series into calendar weeks starting on Monday and
// computes week-over-week deltas. The series is assumed ordered by date,
// as produced by the analysis package; output weeks are ascending.
func Weekly(series analysis.Series) []WeekPoint {
	if len(series) == 0 {
		return nil
	}

	points := make([]WeekPoint, 0, len(series)/7+1)

	current := dateutil.WeekStart(series[0].Date)
	last := series[0]

	flush := func() {
		points = append(points, WeekPoint{
			WeekStart: current,
			Planned:   last.Planned,
			Actual:    last.Actual,
			Deviation: last.Deviation,
		})
	}

	for _, p := range series[1:] {
		week := dateutil.WeekStart(p.Date)
		if !week.Equal(current) {
			flush()

			current = week
		}

		last = p
	}

	flush()

	for i := 1; i < len(points); i++ {
		points[i].PlannedChange = points[i].Planned - points[i-1].Planned
		points[i].ActualChange = points[i].Actual - points[i-1].Actual
		points[i].DeviationChange = points[i].Deviation - points[i-1].Deviation
	}

	return points
}
