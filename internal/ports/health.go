package ports

import (
	"context"
	"time"
)

// HealthChecker reports whether one dependency is usable. Name labels it in
// the readiness report, e.g. "postgres" or "member-api".
type HealthChecker interface {
	Name() string
	HealthCheck(ctx context.Context) error
}

// Criticality decides what a failing dependency does to readiness.
type Criticality int

const (
	// Critical dependencies take the service out of rotation when they fail.
	Critical Criticality = iota
	// Optional dependencies only degrade a feature (caching, events,
	// member lookups).
	Optional
)

// CheckResult is the outcome of one dependency check.
type CheckResult struct {
	Criticality Criticality
	Err         error
	Elapsed     time.Duration
}

// HealthReport maps checker names to their latest result.
type HealthReport map[string]CheckResult

// Ready is false when any critical dependency failed.
func (r HealthReport) Ready() bool {
	for _, res := range r {
		if res.Err != nil && res.Criticality == Critical {
			return false
		}
	}
	return true
}

// Degraded is true when any optional dependency failed.
func (r HealthReport) Degraded() bool {
	for _, res := range r {
		if res.Err != nil && res.Criticality == Optional {
			return true
		}
	}
	return false
}

// HealthRegistry holds the checks behind the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker, criticality Criticality)
	CheckAll(ctx context.Context) HealthReport
}
