package report

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// CountSafeParallel is CountSafe with levels evaluated concurrently.
// At most workers predicates run at once; workers < 1 means one.
func CountSafeParallel(ctx context.Context, levels []Level, predicate Predicate, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}
	if len(levels) == 0 {
		return 0, ctx.Err()
	}

	// Split into contiguous chunks so each goroutine handles a batch
	chunk := (len(levels) + workers - 1) / workers

	var safe atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(levels); start += chunk {
		end := min(start+chunk, len(levels))
		batch := levels[start:end]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			safe.Add(int64(CountSafe(batch, predicate)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(safe.Load()), nil
}
