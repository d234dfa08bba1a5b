package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/stuti-api/internal/adapters/clients/acl/member"
	"github.com/jsamuelsen11/stuti-api/internal/domain"
	domainmember "github.com/jsamuelsen11/stuti-api/internal/domain/member"
	"github.com/jsamuelsen11/stuti-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

// MemberAPIName identifies the member API in health results, traces and metrics.
const MemberAPIName = "member-api"

// Compile-time interface checks.
var (
	_ ports.MemberClient  = (*MemberClient)(nil)
	_ ports.HealthChecker = (*MemberClient)(nil)
)

// MemberClient is the outbound adapter for the downstream member API.
// Responses are translated by [member.ToDomainMember]; HTTP failures are
// mapped to domain errors by [StatusError].
type MemberClient struct {
	client *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewMemberClient creates a MemberClient that sends requests through client.
// The client's BaseURL should point to the member API root.
func NewMemberClient(client *httpclient.Client, logger *slog.Logger) *MemberClient {
	return &MemberClient{
		client: client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetMember fetches GET /api/v1/members/{id}. A withdrawn member is reported
// as domain.ErrNotFound.
func (c *MemberClient) GetMember(ctx context.Context, id int64) (*domainmember.Member, error) {
	var dto member.MemberDTO
	if err := c.req.Get(ctx, fmt.Sprintf("/api/v1/members/%d", id), http.StatusOK, &dto); err != nil {
		return nil, fmt.Errorf("getting member %d: %w", id, err)
	}

	if !member.IsActive(&dto) {
		c.logger.InfoContext(ctx, "member withdrawn", slog.Int64("member_id", id))
		return nil, fmt.Errorf("member %d withdrawn: %w", id, domain.ErrNotFound)
	}

	m := member.ToDomainMember(&dto)
	return &m, nil
}

// Name returns the identifier used in the health registry.
func (c *MemberClient) Name() string {
	return MemberAPIName
}

// HealthCheck reports member API availability from the circuit breaker
// state of the underlying client. No network call is made.
func (c *MemberClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
