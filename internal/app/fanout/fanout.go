// Package fanout runs independent tasks with a bounded number of goroutines.
// The study group service uses it for post-delete cleanup and the health
// registry for concurrent readiness probes.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result is the outcome of one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers in flight and returns
// results in input order. An item still waiting for a slot when ctx is done
// gets ctx.Err() without fn being called. maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		}()
	}

	wg.Wait()
	return results
}

// Task is a unit of work with no result value.
type Task func(context.Context) error

// Do runs tasks concurrently and joins their errors.
func Do(ctx context.Context, maxWorkers int, tasks ...Task) error {
	results := Run(ctx, maxWorkers, tasks, func(ctx context.Context, t Task) (struct{}, error) {
		return struct{}{}, t(ctx)
	})
	return Errors(results)
}

// Errors joins the non-nil errors in results, or returns nil.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
