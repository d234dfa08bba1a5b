package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
	"github.com/jsamuelsen11/stuti-api/mocks"
)

type readinessBody struct {
	Status string `json:"status"`
	Checks map[string]struct {
		Status    string `json:"status"`
		Critical  bool   `json:"critical"`
		Error     string `json:"error"`
		LatencyMS int64  `json:"latency_ms"`
	} `json:"checks"`
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))
	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	if body := decodeJSON[map[string]string](t, rec); body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")
	tests := []struct {
		name       string
		report     ports.HealthReport
		wantCode   int
		wantStatus string
	}{
		{
			name:       "no checks",
			report:     ports.HealthReport{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name: "all passing",
			report: ports.HealthReport{
				"postgres":   {Criticality: ports.Critical, Elapsed: 3 * time.Millisecond},
				"member-api": {Criticality: ports.Optional},
			},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name: "cache down",
			report: ports.HealthReport{
				"postgres": {Criticality: ports.Critical},
				"redis":    {Criticality: ports.Optional, Err: refused},
			},
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
		},
		{
			name: "database down",
			report: ports.HealthReport{
				"postgres": {Criticality: ports.Critical, Err: refused},
				"redis":    {Criticality: ports.Optional},
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.report)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			body := decodeJSON[readinessBody](t, rec)
			if body.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", body.Status, tt.wantStatus)
			}
			if len(body.Checks) != len(tt.report) {
				t.Fatalf("checks = %v, want %d entries", body.Checks, len(tt.report))
			}
			for name, res := range tt.report {
				got := body.Checks[name]
				if got.Critical != (res.Criticality == ports.Critical) {
					t.Errorf("%s critical = %v", name, got.Critical)
				}
				if res.Err != nil && (got.Status != "failing" || got.Error != res.Err.Error()) {
					t.Errorf("%s = %+v, want failing with %q", name, got, res.Err)
				}
				if res.Err == nil && got.Status != "ok" {
					t.Errorf("%s status = %q, want ok", name, got.Status)
				}
			}
		})
	}
}
