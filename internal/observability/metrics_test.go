package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/chantier-labs/avancement/internal/observability"
)

func setupTestMeter(t *testing.T) (*observability.EngineMetrics, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := mp.Meter("test")

	em, err := observability.NewEngineMetrics(meter)
	require.NoError(t, err)

	return em, reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics

	err := reader.Collect(context.Background(), &rm)
	require.NoError(t, err)

	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for idx := range rm.ScopeMetrics {
		for midx := range rm.ScopeMetrics[idx].Metrics {
			if rm.ScopeMetrics[idx].Metrics[midx].Name == name {
				return &rm.ScopeMetrics[idx].Metrics[midx]
			}
		}
	}

	return nil
}

func TestEngineMetrics_RecordOp(t *testing.T) {
	t.Parallel()
	em, reader := setupTestMeter(t)
	ctx := context.Background()

	em.RecordOp(ctx, "analyze", observability.StatusOK, time.Millisecond*5)

	rm := collectMetrics(t, reader)

	total := findMetric(rm, "avancement.analyses.total")
	require.NotNil(t, total, "avancement.analyses.total metric not found")

	duration := findMetric(rm, "avancement.analysis.duration.seconds")
	require.NotNil(t, duration, "avancement.analysis.duration.seconds metric not found")
}

func TestEngineMetrics_RecordOpError(t *testing.T) {
	t.Parallel()
	em, reader := setupTestMeter(t)
	ctx := context.Background()

	em.RecordOp(ctx, "evm", observability.StatusError, time.Millisecond)

	rm := collectMetrics(t, reader)

	errTotal := findMetric(rm, "avancement.errors.total")
	require.NotNil(t, errTotal, "avancement.errors.total metric not found")
}

func TestEngineMetrics_RecordSeriesSize(t *testing.T) {
	t.Parallel()
	em, reader := setupTestMeter(t)

	em.RecordSeriesSize(context.Background(), 31)

	rm := collectMetrics(t, reader)

	days := findMetric(rm, "avancement.series.days")
	require.NotNil(t, days, "avancement.series.days metric not found")
}

func TestEngineMetrics_HistogramBuckets(t *testing.T) {
	t.Parallel()

	em, reader := setupTestMeter(t)
	ctx := context.Background()

	em.RecordOp(ctx, "weekly", observability.StatusOK, time.Millisecond*10)

	rm := collectMetrics(t, reader)

	duration := findMetric(rm, "avancement.analysis.duration.seconds")
	require.NotNil(t, duration)

	hist, ok := duration.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "expected Histogram data type")
	require.NotEmpty(t, hist.DataPoints)

	bounds := hist.DataPoints[0].Bounds

	expectedBounds := []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	assert.Equal(t, expectedBounds, bounds, "histogram should use custom bucket boundaries")
}

func TestEngineMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var em *observability.EngineMetrics

	// Should not panic on a nil receiver.
	em.RecordOp(context.Background(), "analyze", observability.StatusOK, time.Millisecond)
	em.RecordSeriesSize(context.Background(), 10)
}

func TestNewEngineMetrics_WithNoopMeter(t *testing.T) {
	t.Parallel()

	cfg := observability.DefaultConfig()

	providers, err := observability.Init(cfg)
	require.NoError(t, err)

	t.Cleanup(func() { require.NoError(t, providers.Shutdown(context.Background())) })

	em, err := observability.NewEngineMetrics(providers.Meter)
	require.NoError(t, err)
	assert.NotNil(t, em)

	em.RecordOp(context.Background(), "render", observability.StatusOK, time.Millisecond)
}
