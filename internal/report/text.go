// Package report renders analysis results as terminal tables, interactive
// HTML charts, and compressed snapshot files.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/chantier-labs/avancement/internal/analysis"
	"github.com/chantier-labs/avancement/internal/breakdown"
	"github.com/chantier-labs/avancement/internal/evm"
	"github.com/chantier-labs/avancement/internal/rollup"
)

const (
	percentScale = 100.0

	// deviationWarnPct is the absolute deviation (in percent points) above
	// which the schedule status is flagged.
	deviationWarnPct = 10.0

	currencyDigits = 2
)

// statusLabel returns a colored ahead/behind/on-track label for a deviation
// expressed as a fraction.
func statusLabel(deviation float64) string {
	devPct := deviation * percentScale

	switch {
	case devPct > deviationWarnPct:
		return color.New(color.FgGreen).Sprint("ahead")
	case devPct < -deviationWarnPct:
		return color.New(color.FgRed).Sprint("behind")
	default:
		return color.New(color.FgYellow).Sprint("on track")
	}
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	return tbl
}

func formatDay(t time.Time) string {
	return t.Format(time.DateOnly)
}

func formatPct(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*percentScale)
}

// WriteSeries renders the deviation series as a table, one row per day.
func WriteSeries(w io.Writer, series analysis.Series) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Date", "Planned", "Actual", "Deviation", "Deviation %"})

	for _, p := range series {
		tbl.AppendRow(table.Row{
			formatDay(p.Date),
			formatPct(p.Planned),
			formatPct(p.Actual),
			formatPct(p.Deviation),
			fmt.Sprintf("%.1f", p.DeviationPct),
		})
	}

	if last, ok := series.Last(); ok {
		tbl.AppendFooter(table.Row{"Status", "", "", statusLabel(last.Deviation), ""})
	}

	tbl.Render()
}

// WriteSeriesSummary renders only the latest point of the series with a
// schedule status line.
func WriteSeriesSummary(w io.Writer, series analysis.Series) {
	last, ok := series.Last()
	if !ok {
		fmt.Fprintln(w, "no analysis data")

		return
	}

	fmt.Fprintf(w, "As of %s: planned %s, actual %s (%s)\n",
		formatDay(last.Date),
		formatPct(last.Planned),
		formatPct(last.Actual),
		statusLabel(last.Deviation),
	)
}

// WriteEvm renders earned value metrics as a two-column table. Monetary
// values are grouped with thousands separators.
func WriteEvm(w io.Writer, m evm.Metrics) {
	money := func(v float64) string {
		return humanize.CommafWithDigits(v, currencyDigits)
	}

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRows([]table.Row{
		{"Budget at completion (BAC)", money(m.BAC)},
		{"Planned value (PV)", money(m.PV)},
		{"Earned value (EV)", money(m.EV)},
		{"Actual cost (AC)", money(m.AC)},
		{"Schedule variance (SV)", money(m.SV)},
		{"Cost variance (CV)", money(m.CV)},
		{"Variance at completion (VAC)", money(m.VAC)},
		{"Estimate at completion (EAC)", money(m.EAC)},
		{"Schedule performance (SPI)", fmt.Sprintf("%.3f", m.SPI)},
		{"Cost performance (CPI)", fmt.Sprintf("%.3f", m.CPI)},
		{"Estimated completion", formatDay(m.EstimatedCompletion)},
	})
	tbl.Render()
}

// WriteBreakdown renders per-discipline progress buckets.
func WriteBreakdown(w io.Writer, buckets []breakdown.Bucket) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Discipline", "Mean Progress", "Tasks"})

	total := 0
	for _, b := range buckets {
		tbl.AppendRow(table.Row{b.Discipline, fmt.Sprintf("%.1f%%", b.MeanProgress), b.TaskCount})
		total += b.TaskCount
	}

	tbl.AppendFooter(table.Row{"Total", "", total})
	tbl.Render()
}

// WriteWeekly renders the weekly rollup with period-over-period changes.
func WriteWeekly(w io.Writer, points []rollup.WeekPoint) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Week", "Planned", "Actual", "Deviation", "Δ Planned", "Δ Actual"})

	for _, wp := range points {
		tbl.AppendRow(table.Row{
			formatDay(wp.WeekStart),
			formatPct(wp.Planned),
			formatPct(wp.Actual),
			formatPct(wp.Deviation),
			formatPct(wp.PlannedChange),
			formatPct(wp.ActualChange),
		})
	}

	tbl.Render()
}
