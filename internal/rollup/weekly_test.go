package rollup_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chantier-labs/avancement/internal/analysis"
	"github.com/chantier-labs/avancement/internal/rollup"
	"github.com/chantier-labs/avancement/internal/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// linearSeries builds a daily series with planned rising linearly.
func linearSeries(t *testing.T, startDay, endDay int) analysis.Series {
	t.Helper()

	tasks := make([]schedule.Task, 0, endDay-startDay+1)
	for d := startDay; d <= endDay; d++ {
		tasks = append(tasks, schedule.Task{
			ID:    time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC).Format(time.DateOnly),
			Start: date(2024, time.January, startDay),
			End:   date(2024, time.January, d),
		})
	}

	series, err := analysis.Compute(tasks, nil)
	require.NoError(t, err)

	return series
}

func TestWeekly_MondayBuckets(t *testing.T) {
	t.Parallel()

	// 2024-01-01 is a Monday; 15 days span three ISO weeks.
	series := linearSeries(t, 1, 15)

	weeks := rollup.Weekly(series)

	require.Len(t, weeks, 3)
	assert.Equal(t, date(2024, time.January, 1), weeks[0].WeekStart)
	assert.Equal(t, date(2024, time.January, 8), weeks[1].WeekStart)
	assert.Equal(t, date(2024, time.January, 15), weeks[2].WeekStart)
}

func TestWeekly_LastValueOfWeekNotMean(t *testing.T) {
	t.Parallel()

	series := linearSeries(t, 1, 14)

	weeks := rollup.Weekly(series)

	require.Len(t, weeks, 2)
	// Last day of week one is Jan 7: 7 of 14 tasks done.
	assert.InDelta(t, 0.5, weeks[0].Planned, 1e-12)
	// Last day of week two is Jan 14: everything done.
	assert.InDelta(t, 1.0, weeks[1].Planned, 1e-12)
}

func TestWeekly_PeriodOverPeriodDeltas(t *testing.T) {
	t.Parallel()

	series := linearSeries(t, 1, 14)

	weeks := rollup.Weekly(series)

	require.Len(t, weeks, 2)
	assert.InDelta(t, 0.0, weeks[0].PlannedChange, 0)
	assert.InDelta(t, 0.5, weeks[1].PlannedChange, 1e-12)
	assert.InDelta(t, weeks[1].Deviation-weeks[0].Deviation, weeks[1].DeviationChange, 1e-12)
}

func TestWeekly_MidweekStart(t *testing.T) {
	t.Parallel()

	// Jan 3 2024 is a Wednesday; its bucket is anchored to Monday Jan 1.
	series := linearSeries(t, 3, 9)

	weeks := rollup.Weekly(series)

	require.Len(t, weeks, 2)
	assert.Equal(t, date(2024, time.January, 1), weeks[0].WeekStart)
	assert.Equal(t, date(2024, time.January, 8), weeks[1].WeekStart)
}

func TestWeekly_EmptySeries(t *testing.T) {
	t.Parallel()

	assert.Nil(t, rollup.Weekly(nil))
}

func TestWeekly_SingleDay(t *testing.T) {
	t.Parallel()

	series := linearSeries(t, 10, 10)

	weeks := rollup.Weekly(series)

	require.Len(t, weeks, 1)
	assert.Equal(t, date(2024, time.January, 8), weeks[0].WeekStart)
	assert.InDelta(t, 1.0, weeks[0].Planned, 1e-12)
}
