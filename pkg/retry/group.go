package retry

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// All runs every fn concurrently, each under the executor's retry policy,
// and returns their results in input order. The first retry loop to give up
// cancels the context seen by the remaining loops, and its error is
// returned.
func All[T any](e *Executor, ctx context.Context, fns ...Func[T]) ([]T, error) {
	g, gctx := errgroup.WithContext(ctx)
	results := make([]T, len(fns))

	for i, fn := range fns {
		g.Go(func() error {
			value, err := Execute(e, gctx, fn)
			if err != nil {
				return err
			}
			results[i] = value
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
