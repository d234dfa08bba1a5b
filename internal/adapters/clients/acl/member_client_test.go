package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
	"github.com/jsamuelsen11/stuti-api/internal/platform/config"
	"github.com/jsamuelsen11/stuti-api/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at baseURL with a
// single attempt and a breaker that opens after maxFailures.
func newTestClient(t *testing.T, baseURL string, maxFailures int) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		Enabled: true,
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   maxFailures,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "member-api-test", nil, slog.Default())
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func TestMemberClient_GetMember(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/members/42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"id": 42, "nickname": "studybuddy", "mbti": "ISTJ", "status": "ACTIVE",
		})
	}))
	defer ts.Close()

	client := NewMemberClient(newTestClient(t, ts.URL, 5), slog.Default())
	m, err := client.GetMember(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetMember() error = %v", err)
	}
	if m.ID != 42 || m.Nickname != "studybuddy" {
		t.Errorf("member = %+v, want id 42 nickname studybuddy", m)
	}
	if m.MBTI != studygroup.MBTIISTJ {
		t.Errorf("MBTI = %q, want ISTJ", m.MBTI)
	}
}

func TestMemberClient_GetMember_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "404 maps to ErrNotFound",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"detail":"member 42 not found"}`))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "withdrawn member maps to ErrNotFound",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":42,"nickname":"gone","status":"WITHDRAWN"}`))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "401 maps to ErrUnavailable",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr: domain.ErrUnavailable,
		},
		{
			name: "503 maps to ErrUnavailable",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantErr: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			client := NewMemberClient(newTestClient(t, ts.URL, 5), slog.Default())
			_, err := client.GetMember(context.Background(), 42)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetMember() error = %v, want errors.Is %v", err, tt.wantErr)
			}
		})
	}
}

func TestMemberClient_GetMember_ConnectionRefused(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client := NewMemberClient(newTestClient(t, url, 5), slog.Default())
	_, err := client.GetMember(context.Background(), 1)

	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("GetMember() error = %v, want errors.Is ErrUnavailable", err)
	}
}

func TestMemberClient_HealthCheck(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewMemberClient(newTestClient(t, ts.URL, 1), slog.Default())

	if got := client.Name(); got != MemberAPIName {
		t.Errorf("Name() = %q, want %q", got, MemberAPIName)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() before failures = %v, want nil", err)
	}

	_, _ = client.GetMember(context.Background(), 1)

	err := client.HealthCheck(context.Background())
	if err == nil || !strings.Contains(err.Error(), "circuit breaker open") {
		t.Errorf("HealthCheck() after failure = %v, want open breaker error", err)
	}
}
