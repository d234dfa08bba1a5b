// Package appctx provides the request-scoped unit of work used by the study
// group service.
//
// A RequestContext memoizes reads and queues writes for one request. Writes
// run in order on Commit; when one fails, the writes that already ran are
// rolled back in reverse:
//
//	rc := appctx.New(ctx)
//
//	g, err := appctx.GetOrFetch(rc, "study-group:7", loadGroup)
//
//	rc.AddAction(uploadImage)
//	rc.Stage("study-group:7", g, saveGroup)
//
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

// ErrAlreadyCommitted is returned when actions are staged on, or Commit is
// called for, a RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is staged or executed.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when the same key was cached
// with a different type.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext embeds context.Context and adds read memoization and a
// queue of write actions. One instance per request; reads are not safe for
// concurrent use, the action queue is.
type RequestContext struct {
	context.Context

	cache map[string]cacheEntry

	queueMu   sync.Mutex
	actions   []domain.Action
	committed bool
}

type cacheEntry struct {
	value any
	err   error
}

// New returns an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

type requestContextKey struct{}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored by WithRequestContext, or
// nil if there is none.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// FromContextOrNew returns the stored RequestContext, or a fresh one bound to
// ctx when the caller did not come through the HTTP middleware.
func FromContextOrNew(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the value cached under key, calling fetchFn on a miss.
// Errors are cached too, so a failed lookup is not repeated within the
// request.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Forget drops key from the read cache.
func (rc *RequestContext) Forget(key string) {
	delete(rc.cache, key)
}

// Stage caches entity under key, so later reads in the request see the
// pending write, and queues action for Commit.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if err := rc.AddAction(action); err != nil {
		return err
	}
	rc.cache[key] = cacheEntry{value: entity}
	return nil
}

// Execute runs action right away. It is outside the commit queue and is
// never rolled back.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}
