package source_test

import (
	"bytes"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emitter/core/emitter"
)

type recorder[T any] struct {
	mu     sync.Mutex
	values []T
}

func record[T any](e *emitter.Emitter[T]) *recorder[T] {
	r := &recorder[T]{}
	e.SubscribeFunc(func(v T) {
		r.mu.Lock()
		r.values = append(r.values, v)
		r.mu.Unlock()
	})
	return r
}

func (r *recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.values)
}

func (r *recorder[T]) waitLen(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(r.Values()) >= n
	}, 2*time.Second, time.Millisecond)
}

// syncBuffer is a log sink safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
