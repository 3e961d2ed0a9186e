package app

import (
	"context"
	"sync"
)

// PartialResult holds a result or an error for one of several independent tasks.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// ParallelPartialLimit runs fns with at most limit in flight and collects
// every outcome in input order. A failing task does not cancel the others.
// Tasks still waiting for a slot when ctx ends are not started; their
// result carries ctx.Err().
//
// Example:
//
//	results := ParallelPartialLimit(ctx, 4, summarizeFuncs...)
//	for i, r := range results {
//	    if r.Err != nil {
//	        // report ids[i] as failed
//	    }
//	}
func ParallelPartialLimit[T any](
	ctx context.Context,
	limit int,
	fns ...func(context.Context) (T, error),
) []PartialResult[T] {
	if limit < 1 {
		limit = 1
	}

	results := make([]PartialResult[T], len(fns))
	sem := make(chan struct{}, limit)

	var wg sync.WaitGroup

	for i, fn := range fns {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[i] = PartialResult[T]{Err: ctx.Err()}
				return
			}

			defer func() { <-sem }()

			value, err := fn(ctx)
			results[i] = PartialResult[T]{Value: value, Err: err}
		})
	}

	wg.Wait()

	return results
}
