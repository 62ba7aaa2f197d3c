// Package curve builds the planned and actual daily progress curves that
// feed the deviation analysis. Both curves are defined for every timeline
// day and bounded to [0, 1].
package curve

import (
	"time"

	"github.com/chantier-labs/avancement/internal/schedule"
	"github.com/chantier-labs/avancement/pkg/dateutil"
)

// Planned computes the planned completion fraction for each timeline day:
// the share of tasks whose scheduled end has passed. A task ending exactly
// on d counts as complete on d. The result is monotonically non-decreasing
// by construction; with zero tasks every value is 0.
func Planned(tasks []schedule.Task, days []time.Time) []float64 {
	values := make([]float64, len(days))
	if len(tasks) == 0 {
		return values
	}

	total := float64(len(tasks))

	for i, d := range days {
		done := 0

		for _, t := range tasks {
			if !dateutil.Day(t.End).After(d) {
				done++
			}
		}

		values[i] = float64(done) / total
	}

	return values
}
