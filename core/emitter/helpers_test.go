package emitter_test

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emitter/core/emitter"
)

// recorder collects the values an emitter propagates.
type recorder[T any] struct {
	mu     sync.Mutex
	values []T
}

func record[T any](e *emitter.Emitter[T]) *recorder[T] {
	r := &recorder[T]{}
	e.SubscribeFunc(r.add)
	return r
}

func (r *recorder[T]) add(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.values)
}

func (r *recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// waitLen waits until the recorder holds n values. Mock clock timers fire on their own
// goroutines, so timed assertions poll.
func (r *recorder[T]) waitLen(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return r.Len() >= n
	}, time.Second, time.Millisecond)
}
