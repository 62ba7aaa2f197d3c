package curve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chantier-labs/avancement/internal/curve"
	"github.com/chantier-labs/avancement/internal/schedule"
	"github.com/chantier-labs/avancement/internal/timeline"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func twoTaskSchedule() []schedule.Task {
	return []schedule.Task{
		{ID: "T1", Discipline: "Structural", Start: date(2024, time.January, 1), End: date(2024, time.January, 10)},
		{ID: "T2", Discipline: "Structural", Start: date(2024, time.January, 1), End: date(2024, time.January, 20)},
	}
}

func TestPlanned_InclusiveEndBoundary(t *testing.T) {
	t.Parallel()

	tasks := twoTaskSchedule()
	days, err := timeline.Build(tasks)
	require.NoError(t, err)

	planned := curve.Planned(tasks, days)

	require.Len(t, planned, 20)
	// Before any task ends.
	assert.InDelta(t, 0.0, planned[0], 0)
	assert.InDelta(t, 0.0, planned[8], 0)
	// T1 ends exactly on Jan 10 (index 9): counted as done that day.
	assert.InDelta(t, 0.5, planned[9], 1e-12)
	// Both done on the final day.
	assert.InDelta(t, 1.0, planned[19], 1e-12)
}

func TestPlanned_Monotonic(t *testing.T) {
	t.Parallel()

	tasks := []schedule.Task{
		{ID: "A", Start: date(2024, time.March, 1), End: date(2024, time.March, 4)},
		{ID: "B", Start: date(2024, time.March, 2), End: date(2024, time.March, 9)},
		{ID: "C", Start: date(2024, time.March, 1), End: date(2024, time.March, 15)},
	}
	days, err := timeline.Build(tasks)
	require.NoError(t, err)

	planned := curve.Planned(tasks, days)

	for i := 1; i < len(planned); i++ {
		assert.GreaterOrEqual(t, planned[i], planned[i-1])
	}
}

func TestPlanned_Bounded(t *testing.T) {
	t.Parallel()

	tasks := twoTaskSchedule()
	days, err := timeline.Build(tasks)
	require.NoError(t, err)

	for _, v := range curve.Planned(tasks, days) {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestPlanned_NoTasksAllZero(t *testing.T) {
	t.Parallel()

	days := []time.Time{date(2024, time.January, 1), date(2024, time.January, 2)}

	planned := curve.Planned(nil, days)

	require.Len(t, planned, 2)
	assert.InDelta(t, 0.0, planned[0], 0)
	assert.InDelta(t, 0.0, planned[1], 0)
}
