package analysis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chantier-labs/avancement/internal/analysis"
	"github.com/chantier-labs/avancement/internal/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func referenceTasks() []schedule.Task {
	return []schedule.Task{
		{ID: "T1", Discipline: "Structural", Start: date(2024, time.January, 1), End: date(2024, time.January, 10)},
		{ID: "T2", Discipline: "Structural", Start: date(2024, time.January, 1), End: date(2024, time.January, 20)},
	}
}

func TestCompute_ReferenceScenario(t *testing.T) {
	t.Parallel()

	reports := []schedule.Report{
		{Date: date(2024, time.January, 10), TaskID: "T1", Progress: 100},
	}

	series, err := analysis.Compute(referenceTasks(), reports)

	require.NoError(t, err)
	require.Len(t, series, 20)

	jan10 := series[9]
	assert.Equal(t, date(2024, time.January, 10), jan10.Date)
	assert.InDelta(t, 0.5, jan10.Planned, 1e-12)
	assert.InDelta(t, 1.0, jan10.Actual, 1e-12)
	assert.InDelta(t, 0.5, jan10.Deviation, 1e-12)
	assert.InDelta(t, 100.0, jan10.DeviationPct, 1e-9)
}

func TestCompute_EmptyScheduleFails(t *testing.T) {
	t.Parallel()

	_, err := analysis.Compute(nil, nil)

	require.ErrorIs(t, err, schedule.ErrEmptySchedule)
}

func TestCompute_ZeroGuardOnDeviationPct(t *testing.T) {
	t.Parallel()

	// No report and no finished task early in the timeline: planned is 0,
	// so the relative deviation must be exactly 0, never NaN or Inf.
	series, err := analysis.Compute(referenceTasks(), nil)

	require.NoError(t, err)
	assert.InDelta(t, 0.0, series[0].Planned, 0)
	assert.InDelta(t, 0.0, series[0].DeviationPct, 0)
}

func TestCompute_AllPlannedNoReports(t *testing.T) {
	t.Parallel()

	series, err := analysis.Compute(referenceTasks(), nil)

	require.NoError(t, err)

	last, ok := series.Last()
	require.True(t, ok)
	assert.InDelta(t, 1.0, last.Planned, 1e-12)
	assert.InDelta(t, 0.0, last.Actual, 0)
	assert.InDelta(t, -1.0, last.Deviation, 1e-12)
	assert.InDelta(t, -100.0, last.DeviationPct, 1e-9)
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	reports := []schedule.Report{
		{Date: date(2024, time.January, 3), TaskID: "T1", Progress: 25},
		{Date: date(2024, time.January, 9), TaskID: "T2", Progress: 57.3},
	}

	first, err := analysis.Compute(referenceTasks(), reports)
	require.NoError(t, err)

	second, err := analysis.Compute(referenceTasks(), reports)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_SeriesCoversTimelineWithoutGaps(t *testing.T) {
	t.Parallel()

	series, err := analysis.Compute(referenceTasks(), nil)

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 1), series.Start())
	assert.Equal(t, date(2024, time.January, 20), series.End())

	for i := 1; i < len(series); i++ {
		assert.Equal(t, series[i-1].Date.AddDate(0, 0, 1), series[i].Date)
	}
}

func TestComputeAsOf_ExtendsSeries(t *testing.T) {
	t.Parallel()

	series, err := analysis.ComputeAsOf(referenceTasks(), nil, date(2024, time.January, 25))

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 25), series.End())
	assert.Len(t, series, 25)
}
