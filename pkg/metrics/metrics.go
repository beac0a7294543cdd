// Package metrics holds the instruments shared by the HTTP server and the
// prediction service.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTP records request latencies of the HTTP server by method, route and status.
// A nil *HTTP records nothing.
type HTTP struct {
	requests *prometheus.HistogramVec
}

// NewHTTP creates the HTTP request histogram and registers it with reg. If an
// identical histogram is already registered it is reused.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	requests := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "diabetes",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests by method, route and status code.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "route", "status"})

	if err := reg.Register(requests); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("could not register http metrics: %w", err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil, fmt.Errorf("could not register http metrics: %w", err)
		}
		requests = existing
	}

	return &HTTP{requests: requests}, nil
}

// Observe records one served request.
func (m *HTTP) Observe(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Predictions counts prediction outcomes by risk level and failures by error
// kind, and records the inference latency.
type Predictions struct {
	outcomes metric.Int64Counter
	failures metric.Int64Counter
	latency  metric.Float64Histogram
}

// NewPredictions creates the prediction instruments on meter.
func NewPredictions(meter metric.Meter) (*Predictions, error) {
	outcomes, err := meter.Int64Counter("diabetes.predictions",
		metric.WithDescription("Number of successful predictions by risk level."))
	if err != nil {
		return nil, fmt.Errorf("could not create predictions counter: %w", err)
	}

	failures, err := meter.Int64Counter("diabetes.prediction.failures",
		metric.WithDescription("Number of failed predictions by error kind."))
	if err != nil {
		return nil, fmt.Errorf("could not create prediction failures counter: %w", err)
	}

	latency, err := meter.Float64Histogram("diabetes.prediction.duration",
		metric.WithDescription("Latency of a single prediction."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create prediction latency histogram: %w", err)
	}

	return &Predictions{outcomes: outcomes, failures: failures, latency: latency}, nil
}

// Succeeded records a prediction that resolved to riskLevel.
func (p *Predictions) Succeeded(ctx context.Context, riskLevel string, elapsed time.Duration) {
	if p == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("risk_level", riskLevel))
	p.outcomes.Add(ctx, 1, attrs)
	p.latency.Record(ctx, elapsed.Seconds(), attrs)
}

// Failed records a prediction that failed with the given error kind.
func (p *Predictions) Failed(ctx context.Context, kind string) {
	if p == nil {
		return
	}

	p.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}
