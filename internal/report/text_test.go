package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chantier-labs/avancement/internal/analysis"
	"github.com/chantier-labs/avancement/internal/breakdown"
	"github.com/chantier-labs/avancement/internal/evm"
	"github.com/chantier-labs/avancement/internal/report"
	"github.com/chantier-labs/avancement/internal/rollup"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleSeries() analysis.Series {
	return analysis.Series{
		{Date: date(2024, time.January, 1), Planned: 0.0, Actual: 0.1, Deviation: 0.1, DeviationPct: 0},
		{Date: date(2024, time.January, 2), Planned: 0.5, Actual: 0.3, Deviation: -0.2, DeviationPct: -40},
	}
}

func TestWriteSeries_RendersEveryDay(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	report.WriteSeries(&buf, sampleSeries())

	out := buf.String()
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "-40.0")
}

func TestWriteSeries_StatusBehind(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	report.WriteSeries(&buf, sampleSeries())

	assert.Contains(t, buf.String(), "behind")
}

func TestWriteSeriesSummary_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	report.WriteSeriesSummary(&buf, nil)

	assert.Contains(t, buf.String(), "no analysis data")
}

func TestWriteSeriesSummary_OnTrack(t *testing.T) {
	t.Parallel()

	series := analysis.Series{
		{Date: date(2024, time.March, 1), Planned: 0.42, Actual: 0.40, Deviation: -0.02, DeviationPct: -4.8},
	}

	var buf bytes.Buffer

	report.WriteSeriesSummary(&buf, series)

	out := buf.String()
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "on track")
}

func TestWriteEvm_RendersMetrics(t *testing.T) {
	t.Parallel()

	m := evm.Metrics{
		PV: 2000, EV: 1000, AC: 1100, BAC: 2000,
		SV: -1000, CV: -100, VAC: -200,
		SPI: 0.5, CPI: 0.909, EAC: 2200,
		EstimatedCompletion: date(2024, time.February, 9),
	}

	var buf bytes.Buffer

	report.WriteEvm(&buf, m)

	out := buf.String()
	assert.Contains(t, out, "2,000")
	assert.Contains(t, out, "0.500")
	assert.Contains(t, out, "2024-02-09")
	assert.Contains(t, out, "BAC")
}

func TestWriteBreakdown_TotalsTasks(t *testing.T) {
	t.Parallel()

	buckets := []breakdown.Bucket{
		{Discipline: "Electricité", MeanProgress: 75.0, TaskCount: 2},
		{Discipline: "Non spécifié", MeanProgress: 10.0, TaskCount: 1},
	}

	var buf bytes.Buffer

	report.WriteBreakdown(&buf, buckets)

	out := buf.String()
	assert.Contains(t, out, "Electricité")
	assert.Contains(t, out, "Non spécifié")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "3")
}

func TestWriteWeekly_RendersChanges(t *testing.T) {
	t.Parallel()

	points := []rollup.WeekPoint{
		{WeekStart: date(2024, time.January, 1), Planned: 0.2, Actual: 0.1, Deviation: -0.1},
		{WeekStart: date(2024, time.January, 8), Planned: 0.5, Actual: 0.4, Deviation: -0.1, PlannedChange: 0.3, ActualChange: 0.3},
	}

	var buf bytes.Buffer

	report.WriteWeekly(&buf, points)

	out := buf.String()
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "2024-01-08")
	assert.Contains(t, out, "30.0%")
	require.Contains(t, out, "Week")
}
