package telemetry_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/todo-lists-service/internal/platform/telemetry"
)

// Providers are installed globally, so these tests do not run in parallel.

func TestInitProviders(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		exporter string
		endpoint string
	}{
		{exporter: telemetry.ExporterStdout},
		{exporter: telemetry.ExporterOTLP, endpoint: "http://otel-collector:4318"},
		{exporter: telemetry.ExporterOTLP, endpoint: "https://otel.example.com"},
	} {
		t.Run(tc.exporter+" "+tc.endpoint, func(t *testing.T) {
			tp, err := telemetry.InitTracer(ctx, "todo-lists-service", tc.exporter, tc.endpoint)
			if err != nil {
				t.Fatalf("InitTracer() error = %v", err)
			}
			// No collector runs in tests, so OTLP shutdown errors are ignored.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			mp, err := telemetry.InitMeter(ctx, "todo-lists-service", tc.exporter, tc.endpoint)
			if err != nil {
				t.Fatalf("InitMeter() error = %v", err)
			}
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })

			fields := otel.GetTextMapPropagator().Fields()
			for _, want := range []string{"traceparent", "baggage"} {
				if !slices.Contains(fields, want) {
					t.Errorf("propagator fields = %v, want %q", fields, want)
				}
			}
		})
	}
}

func TestInitProviders_RejectBadExporterSettings(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		exporter        string
		endpoint        string
		wantUnsupported bool
	}{
		{name: "unknown exporter", exporter: "zipkin", wantUnsupported: true},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, traceErr := telemetry.InitTracer(ctx, "todo-lists-service", tt.exporter, tt.endpoint)
			_, meterErr := telemetry.InitMeter(ctx, "todo-lists-service", tt.exporter, tt.endpoint)

			for name, err := range map[string]error{"InitTracer": traceErr, "InitMeter": meterErr} {
				if err == nil {
					t.Errorf("%s() error = nil, want error", name)
					continue
				}
				if got := errors.Is(err, telemetry.ErrUnsupportedExporter); got != tt.wantUnsupported {
					t.Errorf("%s() errors.Is(ErrUnsupportedExporter) = %v, want %v", name, got, tt.wantUnsupported)
				}
			}
		})
	}
}

func TestNewMetrics_RegistersServerAndStoreInstruments(t *testing.T) {
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	metrics.ServerRequestDuration.Record(ctx, 0.01)
	metrics.ServerRequestTotal.Add(ctx, 1)
	metrics.StoreOperationDuration.Record(ctx, 0.002)
	metrics.StoreOperationTotal.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	units := make(map[string]string)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			units[m.Name] = m.Unit
		}
	}
	want := map[string]string{
		"http.server.request.duration": "s",
		"http.server.request.total":    "{request}",
		"db.client.operation.duration": "s",
		"db.client.operation.total":    "{operation}",
	}
	for name, unit := range want {
		if got, ok := units[name]; !ok || got != unit {
			t.Errorf("instrument %s unit = %q (present %v), want %q", name, got, ok, unit)
		}
	}
}
