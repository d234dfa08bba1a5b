package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/stuti-api/internal/platform/config"
	"github.com/jsamuelsen11/stuti-api/internal/platform/telemetry"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if p.Metrics != nil {
		t.Error("Metrics should be nil when telemetry is disabled")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// The enabled cases install global providers, so they do not run in parallel.
func TestSetup_Exporters(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  error
		anyErr   bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp url", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp host port", exporter: telemetry.ExporterOTLP, endpoint: "localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, anyErr: true},
		{name: "unknown", exporter: "zipkin", wantErr: telemetry.ErrUnsupportedExporter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			p, err := telemetry.Setup(ctx, config.TelemetryConfig{
				Enabled:     true,
				Exporter:    tt.exporter,
				Endpoint:    tt.endpoint,
				ServiceName: "stuti-api-test",
			})

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Setup() error = %v, want %v", err, tt.wantErr)
				}
				return
			case tt.anyErr:
				if err == nil {
					t.Fatal("Setup() expected an error")
				}
				return
			case err != nil:
				t.Fatalf("Setup() error = %v", err)
			}

			// Without a collector the OTLP flush fails, which is fine here.
			t.Cleanup(func() { _ = p.Shutdown(ctx) })

			if p.Metrics == nil {
				t.Fatal("Metrics is nil")
			}
			if len(otel.GetTextMapPropagator().Fields()) == 0 {
				t.Error("global propagator has no fields")
			}
		})
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *telemetry.Metrics
	ctx := context.Background()
	m.RecordOperation(ctx, "CreateStudyGroup", "success")
	m.RecordServerRequest(ctx, "GET", "/api/v1/study-groups/{studyGroupId}", 200, time.Millisecond)
	m.RecordClientRequest(ctx, "member-api", "GET", 0, "error", time.Millisecond)

	noopMetrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "stuti-api-test")
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}
	noopMetrics.RecordOperation(ctx, "ApplyStudyGroup", "conflict")
}

func TestMetrics_RecordServerRequest(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := telemetry.NewMetrics(mp, "stuti-api-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	ctx := context.Background()
	m.RecordServerRequest(ctx, "PATCH", "/api/v1/study-groups/{studyGroupId}", 404, 3*time.Millisecond)
	m.RecordServerRequest(ctx, "PATCH", "/api/v1/study-groups/{studyGroupId}", 404, 5*time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	sum := findSum(t, rm, "http.server.request.total")
	if len(sum.DataPoints) != 1 {
		t.Fatalf("data points = %d, want 1", len(sum.DataPoints))
	}
	dp := sum.DataPoints[0]
	if dp.Value != 2 {
		t.Errorf("count = %d, want 2", dp.Value)
	}
	wantAttrs := map[attribute.Key]string{
		telemetry.AttrHTTPRoute: "/api/v1/study-groups/{studyGroupId}",
		telemetry.AttrResult:    "error",
	}
	for k, want := range wantAttrs {
		got, ok := dp.Attributes.Value(k)
		if !ok || got.AsString() != want {
			t.Errorf("attribute %s = %q, want %q", k, got.AsString(), want)
		}
	}
}

func findSum(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s has data %T, want Sum[int64]", name, m.Data)
			}
			return sum
		}
	}
	t.Fatalf("metric %s not collected", name)
	return metricdata.Sum[int64]{}
}
