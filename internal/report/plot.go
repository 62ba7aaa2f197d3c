package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/chantier-labs/avancement/internal/analysis"
)

const fullZoomPct = 100

// SCurveChart builds an interactive line chart of the planned and actual
// S-curves with the deviation overlaid.
func SCurveChart(series analysis.Series, title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Planned vs actual cumulative progress",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "5px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: fullZoomPct}, opts.DataZoom{Type: "inside"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Progress %",
		}),
	)

	xLabels := make([]string, len(series))
	planned := make([]opts.LineData, len(series))
	actual := make([]opts.LineData, len(series))
	deviation := make([]opts.LineData, len(series))

	for i, p := range series {
		xLabels[i] = formatDay(p.Date)
		planned[i] = opts.LineData{Value: p.Planned * percentScale}
		actual[i] = opts.LineData{Value: p.Actual * percentScale}
		deviation[i] = opts.LineData{Value: p.Deviation * percentScale}
	}

	line.SetXAxis(xLabels)
	line.AddSeries("Planned", planned, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	line.AddSeries("Actual", actual, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	line.AddSeries("Deviation", deviation)

	return line
}

// WriteHTML renders the S-curve chart for series as a standalone HTML page.
func WriteHTML(w io.Writer, series analysis.Series, title string) error {
	chart := SCurveChart(series, title)

	err := chart.Render(w)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}
