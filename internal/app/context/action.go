package appctx

import (
	"context"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
)

// AddAction queues action for Commit.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.actions = append(rc.actions, action)
	return nil
}

// Pending returns how many actions are queued and not yet committed.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return 0
	}
	return len(rc.actions)
}

// FuncAction adapts a pair of closures to domain.Action. A nil RollbackFn
// makes Rollback a no-op.
type FuncAction struct {
	Desc       string
	ExecuteFn  func(ctx context.Context) error
	RollbackFn func(ctx context.Context) error
}

var _ domain.Action = (*FuncAction)(nil)

func (a *FuncAction) Execute(ctx context.Context) error { return a.ExecuteFn(ctx) }

func (a *FuncAction) Rollback(ctx context.Context) error {
	if a.RollbackFn == nil {
		return nil
	}
	return a.RollbackFn(ctx)
}

func (a *FuncAction) Description() string { return a.Desc }
