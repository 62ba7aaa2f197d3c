package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricAnalysesTotal   = "avancement.analyses.total"
	metricAnalysisSeconds = "avancement.analysis.duration.seconds"
	metricErrorsTotal     = "avancement.errors.total"
	metricSeriesDays      = "avancement.series.days"

	attrOp     = "op"
	attrStatus = "status"

	// StatusOK labels a successful engine operation.
	StatusOK = "ok"
	// StatusError labels a failed engine operation.
	StatusError = "error"
)

// durationBucketBoundaries covers 1ms to 10s; engine operations are pure
// in-memory computations and complete well inside this range.
var durationBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// EngineMetrics holds the OTel instruments for engine operation metrics.
type EngineMetrics struct {
	analysesTotal   metric.Int64Counter
	analysisSeconds metric.Float64Histogram
	errorsTotal     metric.Int64Counter
	seriesDays      metric.Float64Histogram
}

// NewEngineMetrics creates engine metric instruments from the given meter.
func NewEngineMetrics(mt metric.Meter) (*EngineMetrics, error) {
	b := newMetricBuilder(mt)

	em := &EngineMetrics{
		analysesTotal:   b.counter(metricAnalysesTotal, "Total engine operations executed", "{operation}"),
		analysisSeconds: b.histogram(metricAnalysisSeconds, "Engine operation duration in seconds", "s", durationBucketBoundaries...),
		errorsTotal:     b.counter(metricErrorsTotal, "Total engine operation errors", "{error}"),
		seriesDays:      b.histogram(metricSeriesDays, "Days per computed analysis series", "{day}"),
	}

	if b.err != nil {
		return nil, b.err
	}

	return em, nil
}

// RecordOp records one completed engine operation. Safe to call on a nil
// receiver (no-op).
func (em *EngineMetrics) RecordOp(ctx context.Context, op, status string, duration time.Duration) {
	if em == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String(attrOp, op),
		attribute.String(attrStatus, status),
	)

	em.analysesTotal.Add(ctx, 1, attrs)
	em.analysisSeconds.Record(ctx, duration.Seconds(), attrs)

	if status == StatusError {
		em.errorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrOp, op)))
	}
}

// RecordSeriesSize records the day count of a computed series. Safe to
// call on a nil receiver (no-op).
func (em *EngineMetrics) RecordSeriesSize(ctx context.Context, days int) {
	if em == nil {
		return
	}

	em.seriesDays.Record(ctx, float64(days))
}
