package curve

import (
	"time"

	"github.com/chantier-labs/avancement/internal/schedule"
	"github.com/chantier-labs/avancement/pkg/dateutil"
	"github.com/chantier-labs/avancement/pkg/mathutil"
)

// Actual resamples raw progress reports to the timeline and integrates
// them into a cumulative actual-progress curve:
//
//  1. Reports are grouped by calendar day; each day's value is the mean of
//     its normalized report values (values above 1.0 are treated as raw
//     percentages and divided by 100).
//  2. Days without a report inherit the most recent prior daily mean
//     (forward fill); days before the first report contribute 0.
//  3. The daily means are summed cumulatively and clipped at 1.0.
//
// The clip is a saturating policy, not an error: progress cannot exceed
// 100%, and it also absorbs upstream data that was already cumulative.
func Actual(reports []schedule.Report, days []time.Time) []float64 {
	dailyMeans := dailyMeanByDay(reports)
	values := make([]float64, len(days))

	var cumulative, lastMean float64

	// Single forward pass: carry the last known daily mean across gaps.
	for i, d := range days {
		if mean, ok := dailyMeans[d]; ok {
			lastMean = mean
		}

		cumulative += lastMean
		values[i] = mathutil.Clamp01(cumulative)
	}

	return values
}

// dailyMeanByDay groups reports by calendar day and averages the
// normalized values per day, across tasks.
func dailyMeanByDay(reports []schedule.Report) map[time.Time]float64 {
	byDay := make(map[time.Time][]float64)

	for _, r := range reports {
		day := dateutil.Day(r.Date)
		byDay[day] = append(byDay[day], r.NormalizedProgress())
	}

	means := make(map[time.Time]float64, len(byDay))
	for day, vals := range byDay {
		means[day] = mathutil.Mean(vals)
	}

	return means
}
