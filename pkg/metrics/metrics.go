// Package metrics holds the OpenTelemetry instruments of the service. The
// meter provider is backed by the Prometheus exporter, so everything recorded
// here shows up on the metrics endpoint.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "terms/resolver"

// Recorder counts resolutions and their latency by input variant and outcome.
type Recorder struct {
	resolutions metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewRecorder creates the resolver instruments on mp.
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(meterName)

	resolutions, err := meter.Int64Counter("terms.resolutions",
		metric.WithDescription("Number of resolved inputs by variant and outcome."),
		metric.WithUnit("{resolution}"))
	if err != nil {
		return nil, fmt.Errorf("could not create resolutions counter: %w", err)
	}

	duration, err := meter.Float64Histogram("terms.resolution.duration",
		metric.WithDescription("Time spent resolving an input."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create resolution duration histogram: %w", err)
	}

	return &Recorder{resolutions: resolutions, duration: duration}, nil
}

// ObserveResolve records one resolution.
func (r *Recorder) ObserveResolve(ctx context.Context, variant, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("variant", variant),
		attribute.String("outcome", outcome),
	)
	r.resolutions.Add(ctx, 1, attrs)
	r.duration.Record(ctx, elapsed.Seconds(), attrs)
}
