// Package app holds the study group use cases. StudyGroupService checks
// ownership and lifecycle rules against the domain model, then stages its
// side effects (row writes, image uploads, cache eviction, events) on the
// request's appctx so they commit together at the end of the request.
package app
