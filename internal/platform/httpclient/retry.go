package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/stuti-api/internal/platform/logging"
)

// sendWithRetry sends req up to retry.MaxAttempts times with jittered
// exponential backoff. 429 and 5xx responses are retried, honoring a
// Retry-After given in seconds. When attempts run out on such a status the
// last response is returned with its body unread alongside the error.
func (c *Client) sendWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.MaxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: retry max_attempts must be >= 1, got %d", c.retry.MaxAttempts)
	}

	policy := &backoff.ExponentialBackOff{
		InitialInterval:     c.retry.InitialInterval,
		RandomizationFactor: 0.25,
		Multiplier:          c.retry.Multiplier,
		MaxInterval:         c.retry.MaxInterval,
	}
	policy.Reset()

	var last *http.Response
	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if last != nil {
			discard(last)
			last = nil
		}
		attempt++

		resp, err := c.httpClient.Do(attemptRequest(ctx, req))
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return struct{}{}, backoff.Permanent(err)
			}
			return struct{}{}, err
		}
		if !retryableStatus(resp.StatusCode) {
			last = resp
			return struct{}{}, nil
		}

		last = resp
		statusErr := fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
		if secs, ok := retryAfter(resp, c.retry.MaxInterval); ok {
			return struct{}{}, fmt.Errorf("%w: %w", statusErr, backoff.RetryAfter(secs))
		}
		return struct{}{}, statusErr
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(c.retry.MaxAttempts)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
				slog.String("peer_service", c.peer),
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", c.retry.MaxAttempts),
				slog.Duration("backoff", wait),
				slog.Any("error", err),
			)
		}),
	)
	if err != nil && last == nil {
		return nil, err
	}
	return last, err
}

// attemptRequest clones req for one attempt, replaying the body through
// GetBody when there is one.
func attemptRequest(ctx context.Context, req *http.Request) *http.Request {
	out := req.Clone(ctx)
	if req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			out.Body = body
		}
	}
	return out
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// retryAfter parses a delay-seconds Retry-After header no longer than limit.
// HTTP dates and longer delays fall back to the backoff policy.
func retryAfter(resp *http.Response, limit time.Duration) (int, bool) {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 || time.Duration(secs)*time.Second > limit {
		return 0, false
	}
	return secs, true
}

// discard drains and closes body so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
