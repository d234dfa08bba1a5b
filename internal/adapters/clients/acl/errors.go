// Package acl keeps the member API's wire format out of the domain. The
// DTOs and translators live in acl/member; this package owns the HTTP
// exchange and the mapping of failures onto domain sentinels.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
)

const maxErrorBody = 64 << 10

// StatusError is an unexpected answer from the member API. It unwraps to
// domain.ErrNotFound for 404 and to domain.ErrUnavailable for everything
// else: the lookups are keyed by ids we trust, so any other refusal,
// including 401 and 403 for our own credentials, is the dependency failing.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("member api answered %d: %s", e.Status, e.Detail)
}

func (e *StatusError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return domain.ErrUnavailable
}

// NewStatusError reads the detail out of an RFC 9457 problem body, or a JSON
// body with a "message" field, falling back to the status text.
func NewStatusError(resp *http.Response) *StatusError {
	return &StatusError{Status: resp.StatusCode, Detail: errorDetail(resp)}
}

func errorDetail(resp *http.Response) string {
	fallback := http.StatusText(resp.StatusCode)
	if resp.Body == nil {
		return fallback
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mt != "application/problem+json" && mt != "application/json") {
		return fallback
	}

	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err != nil {
		return fallback
	}
	switch {
	case body.Detail != "":
		return body.Detail
	case body.Message != "":
		return body.Message
	default:
		return fallback
	}
}
