package telemetry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Telemetry holds the metrics pipeline: an OpenTelemetry meter provider
// exported through a Prometheus registry, scraped via /metrics.
type Telemetry struct {
	MeterProvider *sdkmetric.MeterProvider
	Registry      *prometheus.Registry
}

// New initializes the meter provider and registers it globally so
// instrumentation like otelhttp picks it up.
func New() (*Telemetry, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(mp)

	return &Telemetry{
		MeterProvider: mp,
		Registry:      registry,
	}, nil
}

// Shutdown flushes and stops the meter provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	return t.MeterProvider.Shutdown(ctx)
}
