package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

type checkView struct {
	Status    string `json:"status"`
	Critical  bool   `json:"critical"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

type readinessView struct {
	Status string               `json:"status"`
	Checks map[string]checkView `json:"checks"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready. It answers 503 "not_ready" when a
// critical dependency fails and 200 "degraded" when only optional ones do.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := h.registry.CheckAll(r.Context())

	view := readinessView{Status: "ready", Checks: make(map[string]checkView, len(report))}
	for name, res := range report {
		cv := checkView{
			Status:    "ok",
			Critical:  res.Criticality == ports.Critical,
			LatencyMS: res.Elapsed.Milliseconds(),
		}
		if res.Err != nil {
			cv.Status = "failing"
			cv.Error = res.Err.Error()
		}
		view.Checks[name] = cv
	}

	code := http.StatusOK
	switch {
	case !report.Ready():
		view.Status = "not_ready"
		code = http.StatusServiceUnavailable
	case report.Degraded():
		view.Status = "degraded"
	}
	writeJSON(w, code, view)
}
