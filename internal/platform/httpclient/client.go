// Package httpclient is the outbound HTTP client used for the member API.
// Each call passes through, outermost first:
//
//	circuit breaker -> rate limiter -> span + id headers -> retry -> net/http
//
// Usage:
//
//	c := httpclient.New(&cfg.Client, "member-api", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL()+"/api/v1/members/7", http.NoBody)
//	resp, err := c.Do(ctx, req)
//
// The inbound request and correlation ids are forwarded when the context
// carries them (see WithRequestID and WithCorrelationID).
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/stuti-api/internal/platform/config"
	"github.com/jsamuelsen11/stuti-api/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/stuti-api/internal/platform/httpclient"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request id for forwarding as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation id for forwarding as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Client wraps net/http with a circuit breaker, an optional rate limit,
// retries, tracing and metrics.
type Client struct {
	httpClient *http.Client
	baseURL    string
	peer       string
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	limiter    *rate.Limiter // nil when unlimited
	retry      config.RetryConfig
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// New builds a Client for the downstream named peer. peer labels spans,
// metrics and breaker logs. metrics may be nil.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		peer:       peer,
		retry:      cfg.Retry,
		metrics:    metrics,
		logger:     logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.Burst)
	}
	return c
}

// Do sends req. A nil error means a non-retryable status arrived and resp
// holds an open body. When retries run out on a retryable status both resp
// and err are returned; network failures and breaker rejections return a nil
// resp. The caller closes any non-nil resp.Body.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var last *http.Response
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, err := c.sendWithRetry(spanCtx, req)
		if resp != nil {
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		last = resp
		return resp, err
	})
	if resp == nil {
		// gobreaker drops the result on failure.
		resp = last
	}

	c.record(ctx, req.Method, resp, err, time.Since(start))
	return resp, err
}

// BaseURL is the configured downstream root, without a trailing path.
func (c *Client) BaseURL() string { return c.baseURL }

// Name identifies the downstream in health reports.
func (c *Client) Name() string { return c.peer }

// HealthCheck reports the breaker state without touching the network: a
// half-open breaker is degraded and an open one is failing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.peer)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.peer)
	default:
		return fmt.Errorf("%s: circuit breaker in state %v", c.peer, state)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.peer,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(req.Method),
			telemetry.AttrPeerService.String(c.peer),
		),
	)

	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, _ := ctx.Value(correlationIDKey{}).(string); id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, resp *http.Response, err error, elapsed time.Duration) {
	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}
	c.metrics.RecordClientRequest(ctx, c.peer, method, status, result, elapsed)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
