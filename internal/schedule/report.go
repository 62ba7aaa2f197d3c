package schedule

import (
	"fmt"
	"time"
)

// percentScale converts raw percentages to fractions.
const percentScale = 100.0

// Report is one dated percent-complete observation for a task. Multiple
// reports for the same task on different dates are incremental updates,
// not replacements.
type Report struct {
	Date     time.Time
	TaskID   string
	Progress float64
}

// Validate checks that the report carries its required fields.
func (r Report) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrMissingColumn)
	}

	if r.TaskID == "" {
		return fmt.Errorf("%w: task_id (report %s)", ErrMissingColumn, r.Date.Format(time.DateOnly))
	}

	return nil
}

// NormalizedProgress returns the progress as a fraction in [0, 1]. Legacy
// producers send raw percentages; any value above 1.0 is assumed to be on
// the 0-100 scale and divided by 100.
func (r Report) NormalizedProgress() float64 {
	if r.Progress > 1.0 {
		return r.Progress / percentScale
	}

	return r.Progress
}

// ValidateReports validates every report record.
func ValidateReports(reports []Report) error {
	for _, r := range reports {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	return nil
}
