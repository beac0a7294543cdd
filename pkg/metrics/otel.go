package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// NewMeterProvider returns an OpenTelemetry MeterProvider whose instruments
// are exported through reg.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewTracerProvider returns a TracerProvider that writes finished spans to log
// at debug level. Spans are batched; call Shutdown to flush them.
func NewTracerProvider(log *zap.Logger, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithBatcher(&spanLogger{log: log}),
	}, opts...)

	return sdktrace.NewTracerProvider(opts...)
}

// spanLogger is a sdktrace.SpanExporter backed by zap.
type spanLogger struct {
	log *zap.Logger
}

func (s *spanLogger) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	if !s.log.Core().Enabled(zap.DebugLevel) {
		return nil
	}

	for _, span := range spans {
		fields := []zap.Field{
			zap.String("span", span.Name()),
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.String("span_id", span.SpanContext().SpanID().String()),
			zap.Duration("duration", span.EndTime().Sub(span.StartTime())),
			zap.String("status", span.Status().Code.String()),
		}
		if desc := span.Status().Description; desc != "" {
			fields = append(fields, zap.String("status_description", desc))
		}
		for _, kv := range span.Attributes() {
			fields = append(fields, zap.String(string(kv.Key), kv.Value.Emit()))
		}
		s.log.Debug("span finished", fields...)
	}

	return nil
}

func (s *spanLogger) Shutdown(context.Context) error { return nil }
