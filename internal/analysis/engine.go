package analysis

import (
	"time"

	"github.com/chantier-labs/avancement/internal/curve"
	"github.com/chantier-labs/avancement/internal/schedule"
	"github.com/chantier-labs/avancement/internal/timeline"
	"github.com/chantier-labs/avancement/pkg/mathutil"
)

// deviationPctScale expresses the relative deviation in percent.
const deviationPctScale = 100.0

// Compute runs the full reconciliation pipeline: timeline construction,
// planned and actual curves, and per-day deviation. Pure function of its
// inputs; calling it twice on identical inputs yields identical output.
func Compute(tasks []schedule.Task, reports []schedule.Report) (Series, error) {
	return ComputeAsOf(tasks, reports, time.Time{})
}

// ComputeAsOf is Compute with the timeline extended to asOf, for "current
// status" analyses where reporting continues past the baseline end.
func ComputeAsOf(tasks []schedule.Task, reports []schedule.Report, asOf time.Time) (Series, error) {
	days, err := timeline.BuildAsOf(tasks, asOf)
	if err != nil {
		return nil, err
	}

	planned := curve.Planned(tasks, days)
	actual := curve.Actual(reports, days)

	series := make(Series, len(days))

	// Both curves are defined for every timeline day, so the join is a
	// direct zip on the index.
	for i, d := range days {
		deviation := actual[i] - planned[i]

		series[i] = Point{
			Date:         d,
			Planned:      planned[i],
			Actual:       actual[i],
			Deviation:    deviation,
			DeviationPct: mathutil.SafeRatio(deviation, planned[i]) * deviationPctScale,
		}
	}

	return series, nil
}
