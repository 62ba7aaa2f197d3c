package schedule

import "errors"

// Sentinel errors for the ingestion boundary. Structural problems fail
// fast here; the calculation packages never see malformed records.
var (
	// ErrEmptySchedule indicates no reference tasks were provided, so no
	// analysis date range exists.
	ErrEmptySchedule = errors.New("schedule: no reference tasks")

	// ErrMissingColumn indicates an input record lacks a required field.
	ErrMissingColumn = errors.New("schedule: missing required column")

	// ErrInvalidTaskRange indicates a task whose start date is after its
	// end date.
	ErrInvalidTaskRange = errors.New("schedule: task start after end")

	// ErrInvalidDate indicates a date field that could not be parsed.
	ErrInvalidDate = errors.New("schedule: invalid date")

	// ErrInvalidProgress indicates a progress value that could not be parsed.
	ErrInvalidProgress = errors.New("schedule: invalid progress value")

	// ErrUnsupportedFormat indicates a schedule file with an extension no
	// decoder is registered for.
	ErrUnsupportedFormat = errors.New("schedule: unsupported file format")
)
