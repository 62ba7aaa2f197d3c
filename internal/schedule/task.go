// Package schedule owns the typed input records of the analysis engine and
// the ingestion boundary that validates them. Raw dict-shaped producer data
// (CSV exports, JSON payloads, YAML fixtures) is converted to Task and
// Report values exactly once, here; downstream packages assume well-formed
// input.
package schedule

import (
	"fmt"
	"time"

	"github.com/chantier-labs/avancement/pkg/dateutil"
)

// DefaultDiscipline is the bucket for tasks without a discipline. The label
// follows the producer system's French locale.
const DefaultDiscipline = "Non spécifié"

// Task is an immutable snapshot of one baseline-schedule entry. Owned by
// the scheduling subsystem; read-only to this engine.
type Task struct {
	ID         string
	Discipline string
	Start      time.Time
	End        time.Time
}

// Validate checks the task invariants. Start and End are compared on
// calendar days.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: id", ErrMissingColumn)
	}

	if t.Start.IsZero() {
		return fmt.Errorf("%w: start (task %s)", ErrMissingColumn, t.ID)
	}

	if t.End.IsZero() {
		return fmt.Errorf("%w: end (task %s)", ErrMissingColumn, t.ID)
	}

	if dateutil.Day(t.Start).After(dateutil.Day(t.End)) {
		return fmt.Errorf("%w: task %s (%s > %s)",
			ErrInvalidTaskRange, t.ID,
			t.Start.Format(time.DateOnly), t.End.Format(time.DateOnly))
	}

	return nil
}

// DisciplineOrDefault returns the task discipline, or DefaultDiscipline
// when none was recorded.
func (t Task) DisciplineOrDefault() string {
	if t.Discipline == "" {
		return DefaultDiscipline
	}

	return t.Discipline
}

// ValidateTasks validates every task and the non-empty-schedule invariant.
func ValidateTasks(tasks []Task) error {
	if len(tasks) == 0 {
		return ErrEmptySchedule
	}

	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	return nil
}
