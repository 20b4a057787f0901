package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for every item with at most limit goroutines in
// flight. The context handed to action is cancelled as soon as one action
// fails; the first error is returned. A limit of zero or less means no limit.
func ForEach[T any](ctx context.Context, items []T, limit int, action func(context.Context, T) error) error {
	group, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, item := range items {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			return action(groupCtx, item)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Map applies mapFn to every item concurrently and returns the results in
// input order.
func Map[T any, R any](ctx context.Context, items []T, limit int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}

	err := ForEach(ctx, indexes, limit, func(ctx context.Context, i int) error {
		r, err := mapFn(ctx, items[i])
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
