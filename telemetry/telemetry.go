// Package telemetry provides optional OpenTelemetry instrumentation for the
// handle registry. Only the otel metric API is used; wiring an SDK and
// exporter is left to the host application.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName identifies this instrumentation scope.
const meterName = "github.com/vinayprograms/futurekit"

// RegistryMetrics holds counters for registry activity. All record methods
// are safe on a nil receiver, so the registry can call them unconditionally.
type RegistryMetrics struct {
	registered metric.Int64Counter
	evicted    metric.Int64Counter
	popped     metric.Int64Counter
	delegated  metric.Int64Counter
}

// NewRegistryMetrics creates registry counters on the given meter.
func NewRegistryMetrics(meter metric.Meter) (*RegistryMetrics, error) {
	registered, err := meter.Int64Counter("futurekit.registry.registered",
		metric.WithDescription("Handles registered"),
	)
	if err != nil {
		return nil, err
	}
	evicted, err := meter.Int64Counter("futurekit.registry.evicted",
		metric.WithDescription("Handles evicted to satisfy the size bound"),
	)
	if err != nil {
		return nil, err
	}
	popped, err := meter.Int64Counter("futurekit.registry.popped",
		metric.WithDescription("Handles removed via pop"),
	)
	if err != nil {
		return nil, err
	}
	delegated, err := meter.Int64Counter("futurekit.registry.delegated",
		metric.WithDescription("Operations delegated to stored handles"),
	)
	if err != nil {
		return nil, err
	}
	return &RegistryMetrics{
		registered: registered,
		evicted:    evicted,
		popped:     popped,
		delegated:  delegated,
	}, nil
}

// Default creates registry counters on the globally registered meter
// provider. Without an SDK installed this yields no-op counters.
func Default() (*RegistryMetrics, error) {
	return NewRegistryMetrics(otel.GetMeterProvider().Meter(meterName))
}

// RecordRegistered counts a successful registration.
func (m *RegistryMetrics) RecordRegistered(ctx context.Context) {
	if m == nil {
		return
	}
	m.registered.Add(ctx, 1)
}

// RecordEvicted counts an eviction.
func (m *RegistryMetrics) RecordEvicted(ctx context.Context) {
	if m == nil {
		return
	}
	m.evicted.Add(ctx, 1)
}

// RecordPopped counts a pop that found an entry.
func (m *RegistryMetrics) RecordPopped(ctx context.Context) {
	if m == nil {
		return
	}
	m.popped.Add(ctx, 1)
}

// RecordDelegated counts a delegated operation, tagged with the operation
// name and whether the delegated call reported an error.
func (m *RegistryMetrics) RecordDelegated(ctx context.Context, op string, failed bool) {
	if m == nil {
		return
	}
	m.delegated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.Bool("failed", failed),
	))
}
