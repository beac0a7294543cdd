package metrics_test

import (
	"context"
	"diabetes/pkg/metrics"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	m.Observe(http.MethodPost, "POST /api/diabetes/predict", http.StatusOK, 20*time.Millisecond)
	m.Observe(http.MethodPost, "POST /api/diabetes/predict", http.StatusUnprocessableEntity, time.Millisecond)
	m.Observe(http.MethodGet, "GET /health", http.StatusOK, time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "diabetes_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 3, count)

	// registering twice reuses the collector
	again, err := metrics.NewHTTP(reg)
	require.NoError(t, err)
	again.Observe(http.MethodGet, "GET /health", http.StatusOK, time.Millisecond)

	count, err = testutil.GatherAndCount(reg, "diabetes_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestHTTP_Nil(t *testing.T) {
	var m *metrics.HTTP
	require.NotPanics(t, func() {
		m.Observe(http.MethodGet, "/", http.StatusOK, time.Second)
	})
}

func TestPredictions(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	p, err := metrics.NewPredictions(mp.Meter("test"))
	require.NoError(t, err)

	p.Succeeded(ctx, "LOW", 2*time.Millisecond)
	p.Succeeded(ctx, "LOW", 3*time.Millisecond)
	p.Succeeded(ctx, "HIGH", time.Millisecond)
	p.Failed(ctx, "INVALID_INPUT")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	outcomes, ok := byName["diabetes.predictions"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	total := int64(0)
	for _, dp := range outcomes.DataPoints {
		total += dp.Value
	}
	require.Equal(t, int64(3), total)
	require.Len(t, outcomes.DataPoints, 2)

	failures, ok := byName["diabetes.prediction.failures"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, failures.DataPoints, 1)
	require.Equal(t, int64(1), failures.DataPoints[0].Value)

	latency, ok := byName["diabetes.prediction.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, latency.DataPoints, 2)
}

func TestPredictions_Nil(t *testing.T) {
	var p *metrics.Predictions
	require.NotPanics(t, func() {
		p.Succeeded(context.Background(), "LOW", time.Second)
		p.Failed(context.Background(), "INTERNAL")
	})
}

func TestNewMeterProvider_ExportsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	p, err := metrics.NewPredictions(mp.Meter("test"))
	require.NoError(t, err)
	p.Succeeded(context.Background(), "LOW", time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "diabetes_predictions") {
			found = true
		}
	}
	require.True(t, found)
}

func TestNewTracerProvider_LogsSpans(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tp := metrics.NewTracerProvider(zap.New(core))

	_, span := tp.Tracer("test").Start(context.Background(), "prediction.Predict")
	span.SetAttributes(attribute.String("risk_level", "HIGH"))
	span.SetStatus(codes.Error, "SCALING_FAILED")
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))

	entries := logs.FilterMessage("span finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "prediction.Predict", fields["span"])
	require.Equal(t, "HIGH", fields["risk_level"])
	require.Equal(t, "Error", fields["status"])
	require.Equal(t, "SCALING_FAILED", fields["status_description"])
	require.Len(t, fields["trace_id"], 32)
}

func TestNewTracerProvider_DebugDisabled(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	tp := metrics.NewTracerProvider(zap.New(core))

	_, span := tp.Tracer("test").Start(context.Background(), "prediction.Predict")
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))
	require.Zero(t, logs.Len())
}
