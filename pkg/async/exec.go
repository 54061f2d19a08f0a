package async

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Exec executes a function asynchronously that only returns an error.
// The returned future carries no value; use it as a completion signal.
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *Future[struct{}] {
	return Async(ctx, param, func(ctx context.Context, p T) (struct{}, error) {
		return struct{}{}, fn(ctx, p)
	})
}

// WaitAll waits for all futures to complete and returns their results in order.
// Returns the first error reported by any future.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	var g errgroup.Group
	for i, future := range futures {
		g.Go(func() error {
			val, err := future.Await()
			if err != nil {
				return err
			}
			results[i] = val
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WaitAny waits for any of the futures to complete and returns the index of the completed
// future together with its result.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type result struct {
		index int
		val   U
		err   error
	}

	done := make(chan result, 1)
	var once sync.Once

	for i, future := range futures {
		go func(index int, f *Future[U]) {
			val, err := f.Await()
			once.Do(func() {
				done <- result{index: index, val: val, err: err}
			})
		}(i, future)
	}

	res := <-done
	return res.index, res.val, res.err
}
