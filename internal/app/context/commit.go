package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/platform/logging"
)

// rollbackTimeout bounds the rollbacks of a failed Commit.
const rollbackTimeout = 10 * time.Second

// Commit runs the queued actions in order. If one fails, the actions that
// already succeeded are rolled back newest first and the failure is
// returned wrapped with the action's description. Rollbacks run detached
// from ctx's cancellation, limited by rollbackTimeout, so an expired request
// deadline still gets its side effects undone. Rollback failures are logged
// only.
//
// The context is marked committed whatever the outcome; a second Commit
// returns ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	actions := rc.actions
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range actions {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(actions)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			rollback(ctx, actions[:i])
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}

	return nil
}

func rollback(ctx context.Context, done []domain.Action) {
	logger := logging.FromContext(ctx)
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	for j := len(done) - 1; j >= 0; j-- {
		if err := done[j].Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", j+1),
				slog.String("action", done[j].Description()),
				slog.Any("error", err),
			)
		}
	}
}
