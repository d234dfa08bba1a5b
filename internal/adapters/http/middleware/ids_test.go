package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/middleware"
)

// idChain runs RequestID then CorrelationID and captures both ids as seen by
// the handler.
func idChain(gotReq, gotCorr *string) http.Handler {
	return middleware.RequestID()(middleware.CorrelationID()(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			*gotReq = middleware.RequestIDFromContext(r.Context())
			*gotCorr = middleware.CorrelationIDFromContext(r.Context())
		}),
	))
}

func TestRequestID_Inbound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{"well-formed id kept", "req-123", true},
		{"missing id generated", "", false},
		{"id with spaces replaced", "req 123", false},
		{"id with newline replaced", "req\n123", false},
		{"overlong id replaced", strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReq, gotCorr string
			req := httptest.NewRequest(http.MethodGet, "/api/v1/study-groups/1", http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Request-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			idChain(&gotReq, &gotCorr).ServeHTTP(rec, req)

			if tt.wantKept {
				if gotReq != tt.header {
					t.Errorf("request id = %q, want %q", gotReq, tt.header)
				}
			} else if _, err := uuid.Parse(gotReq); err != nil {
				t.Errorf("request id = %q, want generated UUID", gotReq)
			}
			if rec.Header().Get("X-Request-ID") != gotReq {
				t.Errorf("response X-Request-ID = %q, want %q", rec.Header().Get("X-Request-ID"), gotReq)
			}
		})
	}
}

func TestCorrelationID_FallsBackToRequestID(t *testing.T) {
	t.Parallel()

	var gotReq, gotCorr string
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "req-1")
	rec := httptest.NewRecorder()
	idChain(&gotReq, &gotCorr).ServeHTTP(rec, req)

	if gotCorr != "req-1" {
		t.Errorf("correlation id = %q, want request id", gotCorr)
	}
	if rec.Header().Get("X-Correlation-ID") != "req-1" {
		t.Errorf("response X-Correlation-ID = %q", rec.Header().Get("X-Correlation-ID"))
	}
}

func TestCorrelationID_KeepsInbound(t *testing.T) {
	t.Parallel()

	var gotReq, gotCorr string
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Correlation-ID", "flow-9")
	idChain(&gotReq, &gotCorr).ServeHTTP(httptest.NewRecorder(), req)

	if gotCorr != "flow-9" {
		t.Errorf("correlation id = %q, want flow-9", gotCorr)
	}
	if gotReq == "flow-9" {
		t.Error("request id should not take the correlation id")
	}
}

func TestIDsFromEmptyContext(t *testing.T) {
	t.Parallel()

	ctx := httptest.NewRequest(http.MethodGet, "/", http.NoBody).Context()
	if got := middleware.RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", got)
	}
}
