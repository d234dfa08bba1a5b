// Package health runs the readiness checks of the study group API's
// dependencies concurrently, each under its own deadline.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/stuti-api/internal/app/fanout"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

const (
	defaultCheckTimeout = 2 * time.Second
	maxConcurrentChecks = 8
)

var _ ports.HealthRegistry = (*Registry)(nil)

type entry struct {
	checker     ports.HealthChecker
	criticality ports.Criticality
}

// Registry is safe for concurrent Register and CheckAll calls.
type Registry struct {
	mu           sync.RWMutex
	entries      []entry
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each check. Non-positive values are ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: defaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker. A later checker with the same name replaces the
// earlier one in reports.
func (r *Registry) Register(checker ports.HealthChecker, criticality ports.Criticality) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{checker: checker, criticality: criticality})
}

// CheckAll runs every check and reports each one's outcome and latency.
func (r *Registry) CheckAll(ctx context.Context) ports.HealthReport {
	r.mu.RLock()
	entries := append([]entry(nil), r.entries...)
	r.mu.RUnlock()

	timed := fanout.Run(ctx, maxConcurrentChecks, entries, func(ctx context.Context, e entry) (time.Duration, error) {
		ctx, cancel := context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()
		start := time.Now()
		err := e.checker.HealthCheck(ctx)
		return time.Since(start), err
	})

	report := make(ports.HealthReport, len(entries))
	for i, e := range entries {
		report[e.checker.Name()] = ports.CheckResult{
			Criticality: e.criticality,
			Err:         timed[i].Err,
			Elapsed:     timed[i].Value,
		}
	}
	return report
}
