package curve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chantier-labs/avancement/internal/curve"
	"github.com/chantier-labs/avancement/internal/schedule"
	"github.com/chantier-labs/avancement/pkg/dateutil"
)

func TestActual_ZeroBeforeFirstReport(t *testing.T) {
	t.Parallel()

	days := dateutil.Range(date(2024, time.January, 1), date(2024, time.January, 5))
	reports := []schedule.Report{
		{Date: date(2024, time.January, 4), TaskID: "T1", Progress: 10},
	}

	actual := curve.Actual(reports, days)

	assert.InDelta(t, 0.0, actual[0], 0)
	assert.InDelta(t, 0.0, actual[2], 0)
	assert.InDelta(t, 0.1, actual[3], 1e-12)
}

func TestActual_MeanPerDayAcrossTasks(t *testing.T) {
	t.Parallel()

	days := dateutil.Range(date(2024, time.January, 1), date(2024, time.January, 1))
	reports := []schedule.Report{
		{Date: date(2024, time.January, 1), TaskID: "T1", Progress: 20},
		{Date: date(2024, time.January, 1), TaskID: "T2", Progress: 40},
	}

	actual := curve.Actual(reports, days)

	require.Len(t, actual, 1)
	assert.InDelta(t, 0.3, actual[0], 1e-12)
}

func TestActual_ForwardFillRepeatsLastMean(t *testing.T) {
	t.Parallel()

	days := dateutil.Range(date(2024, time.January, 1), date(2024, time.January, 4))
	reports := []schedule.Report{
		{Date: date(2024, time.January, 1), TaskID: "T1", Progress: 10},
	}

	actual := curve.Actual(reports, days)

	// The Jan 1 daily mean (0.1) is carried into every later gap day and
	// integrated cumulatively.
	assert.InDelta(t, 0.1, actual[0], 1e-12)
	assert.InDelta(t, 0.2, actual[1], 1e-12)
	assert.InDelta(t, 0.3, actual[2], 1e-12)
	assert.InDelta(t, 0.4, actual[3], 1e-12)
}

func TestActual_ClipAtOne(t *testing.T) {
	t.Parallel()

	days := dateutil.Range(date(2024, time.January, 1), date(2024, time.January, 3))
	reports := []schedule.Report{
		{Date: date(2024, time.January, 1), TaskID: "T1", Progress: 80},
		{Date: date(2024, time.January, 2), TaskID: "T1", Progress: 90},
	}

	actual := curve.Actual(reports, days)

	assert.InDelta(t, 0.8, actual[0], 1e-12)
	assert.InDelta(t, 1.0, actual[1], 0)
	assert.InDelta(t, 1.0, actual[2], 0)
}

func TestActual_NormalizesRawPercentages(t *testing.T) {
	t.Parallel()

	days := dateutil.Range(date(2024, time.January, 1), date(2024, time.January, 1))
	reports := []schedule.Report{
		{Date: date(2024, time.January, 1), TaskID: "T1", Progress: 57.3},
		{Date: date(2024, time.January, 1), TaskID: "T2", Progress: 0.5},
	}

	actual := curve.Actual(reports, days)

	// 57.3 is a legacy raw percentage (0.573); 0.5 is already a fraction.
	assert.InDelta(t, (0.573+0.5)/2, actual[0], 1e-12)
}

func TestActual_NoReportsAllZero(t *testing.T) {
	t.Parallel()

	days := dateutil.Range(date(2024, time.January, 1), date(2024, time.January, 10))

	for _, v := range curve.Actual(nil, days) {
		assert.InDelta(t, 0.0, v, 0)
	}
}

func TestActual_Bounded(t *testing.T) {
	t.Parallel()

	days := dateutil.Range(date(2024, time.January, 1), date(2024, time.February, 1))
	reports := []schedule.Report{
		{Date: date(2024, time.January, 2), TaskID: "T1", Progress: 35},
		{Date: date(2024, time.January, 9), TaskID: "T2", Progress: 120},
	}

	for _, v := range curve.Actual(reports, days) {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
