package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/platform/httpclient"
)

// Requester performs JSON GETs against the member API and turns every
// failure into a domain error.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Get fetches path under the client's base URL and decodes the body into out
// when the status is want. Other statuses become a *StatusError; transport
// failures and exhausted retries with no usable answer wrap
// domain.ErrUnavailable.
func (r *Requester) Get(ctx context.Context, path string, want int, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.client.BaseURL()+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	// After exhausted retries both resp and err are set; the answer wins.
	resp, err := r.client.Do(ctx, req)
	if resp == nil {
		r.logger.ErrorContext(ctx, "member api unreachable",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("GET %s: %w", path, errors.Join(domain.ErrUnavailable, err))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			r.logger.WarnContext(ctx, "closing member api response", slog.Any("error", cerr))
		}
	}()

	if resp.StatusCode != want {
		se := NewStatusError(resp)
		level := slog.LevelWarn
		if resp.StatusCode != http.StatusNotFound {
			level = slog.LevelError
		}
		r.logger.Log(ctx, level, "member api refused request",
			slog.String("path", path),
			slog.Int("status", se.Status),
			slog.String("detail", se.Detail),
		)
		return se
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, errors.Join(domain.ErrUnavailable, err))
	}
	return nil
}
