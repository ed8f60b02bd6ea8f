// Package fanout provides a bounded concurrent map-then-join combinator.
// Callers choose the partial-failure policy explicitly: Map fails fast on
// the first error, MapDrop discards failed items and keeps the rest.
package fanout

import (
	"context"
	"sync"
)

// Map applies fn to every item using at most workers goroutines and returns
// the results in input order. The first error cancels the remaining work
// and is returned.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results, errs := run(ctx, workers, items, fn, true)
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// MapDrop applies fn to every item using at most workers goroutines and
// returns only the successful results, preserving input order. Failed items
// are dropped; the aggregate never fails.
func MapDrop[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []R {
	results, errs := run(ctx, workers, items, fn, false)
	kept := make([]R, 0, len(results))
	for i, err := range errs {
		if err == nil {
			kept = append(kept, results[i])
		}
	}
	return kept
}

func run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error), failFast bool) ([]R, []error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	results := make([]R, len(items))
	errs := make([]error, len(items))

	if len(items) == 0 {
		return results, errs
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	indexes := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					errs[i] = err
					continue
				}
				results[i], errs[i] = fn(ctx, items[i])
				if errs[i] != nil && failFast {
					cancel()
				}
			}
		}()
	}

	for i := range items {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results, errs
}
