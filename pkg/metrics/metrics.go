// Package metrics defines the OpenTelemetry instruments recorded by the
// scanner. Instruments are created from a metric.MeterProvider so the process
// decides where they are exported (Prometheus in production, a manual reader
// in tests).
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "codescanner"

// Scanner holds the instruments recorded by the scan controller.
type Scanner struct {
	detections  metric.Int64Counter
	captured    metric.Int64Counter
	transitions metric.Int64Counter
	dropped     metric.Int64Counter
	dwell       metric.Float64Histogram
}

// NewScanner creates the controller instruments. A nil provider yields no-op
// instruments.
func NewScanner(mp metric.MeterProvider) (*Scanner, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	var (
		s   Scanner
		err error
	)
	if s.detections, err = meter.Int64Counter("scanner.detections",
		metric.WithDescription("Capture frames handled, by filter outcome")); err != nil {
		return nil, fmt.Errorf("could not create detections counter: %w", err)
	}
	if s.captured, err = meter.Int64Counter("scanner.codes.captured",
		metric.WithDescription("Codes reported to the result sink, by normalized type")); err != nil {
		return nil, fmt.Errorf("could not create captured counter: %w", err)
	}
	if s.transitions, err = meter.Int64Counter("scanner.state.transitions",
		metric.WithDescription("State machine transitions, by target state")); err != nil {
		return nil, fmt.Errorf("could not create transitions counter: %w", err)
	}
	if s.dropped, err = meter.Int64Counter("scanner.frames.dropped",
		metric.WithDescription("Frames dropped because the event queue was full")); err != nil {
		return nil, fmt.Errorf("could not create dropped counter: %w", err)
	}
	if s.dwell, err = meter.Float64Histogram("scanner.state.dwell",
		metric.WithUnit("s"),
		metric.WithDescription("Time spent in a state before leaving it"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create dwell histogram: %w", err)
	}

	return &s, nil
}

// Detection records a handled frame.
func (s *Scanner) Detection(ctx context.Context, outcome string) {
	s.detections.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Captured records a result delivered to the sink.
func (s *Scanner) Captured(ctx context.Context, codeType string) {
	s.captured.Add(ctx, 1, metric.WithAttributes(attribute.String("type", codeType)))
}

// Transition records a state change and how long the previous state lasted.
func (s *Scanner) Transition(ctx context.Context, from, to string, dwell time.Duration) {
	s.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("to", to)))
	s.dwell.Record(ctx, dwell.Seconds(), metric.WithAttributes(attribute.String("state", from)))
}

// DroppedFrame records a frame lost to back-pressure.
func (s *Scanner) DroppedFrame(ctx context.Context) {
	s.dropped.Add(ctx, 1)
}

// Journal holds the instruments recorded by the capture journal.
type Journal struct {
	written  metric.Int64Counter
	failed   metric.Int64Counter
	overflow metric.Int64Counter
}

// NewJournal creates the journal instruments. A nil provider yields no-op
// instruments.
func NewJournal(mp metric.MeterProvider) (*Journal, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	var (
		j   Journal
		err error
	)
	if j.written, err = meter.Int64Counter("journal.captures.written"); err != nil {
		return nil, fmt.Errorf("could not create written counter: %w", err)
	}
	if j.failed, err = meter.Int64Counter("journal.captures.failed"); err != nil {
		return nil, fmt.Errorf("could not create failed counter: %w", err)
	}
	if j.overflow, err = meter.Int64Counter("journal.captures.overflow"); err != nil {
		return nil, fmt.Errorf("could not create overflow counter: %w", err)
	}

	return &j, nil
}

// Written records n captures persisted.
func (j *Journal) Written(ctx context.Context, n int) { j.written.Add(ctx, int64(n)) }

// Failed records n captures that could not be persisted.
func (j *Journal) Failed(ctx context.Context, n int) { j.failed.Add(ctx, int64(n)) }

// Overflow records a capture dropped because the journal buffer was full.
func (j *Journal) Overflow(ctx context.Context) { j.overflow.Add(ctx, 1) }
