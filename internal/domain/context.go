package domain

import "context"

// Action is a single write step with a compensating rollback, e.g. "upload
// the study group image" paired with "delete the uploaded image".
//
// Action lives in the domain layer so that entity packages can describe
// their writes without importing the application layer.
type Action interface {
	// Execute performs the write. Implementations must respect ctx.
	Execute(ctx context.Context) error

	// Rollback reverses a previously successful Execute. It is only called
	// when Execute returned nil and a later step of the same commit failed.
	Rollback(ctx context.Context) error

	// Description is used in logs (e.g. "upload image for study group").
	Description() string
}

// WriteStager is the domain's view of the request-scoped context. Services
// stage actions that run together on Commit, or run side effects
// immediately outside the commit queue.
type WriteStager interface {
	// Stage caches entity under key for read-your-writes and queues action.
	Stage(key string, entity any, action Action) error

	// Execute runs action now. It is not rolled back by a failed Commit.
	Execute(action Action) error
}
