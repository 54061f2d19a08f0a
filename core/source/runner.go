package source

import (
	"context"
	"log/slog"
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/dmitrymomot/emitter/core/emitter"
	"github.com/dmitrymomot/emitter/core/logger"
)

// openFunc attaches the underlying resource and returns the blocking read loop.
// It runs synchronously inside Start, so anything produced after Start returns is observed.
// The loop must return once ctx is done.
type openFunc[T any] func(ctx context.Context, emit func(T)) (run func(), err error)

// runner tracks one started run of a source.
type runner struct {
	kind   string
	logger *slog.Logger
	clock  clock.Clock

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// newSource builds an emitter whose Start attaches the resource through open and whose
// Stop detaches it and waits for the read loop to exit.
func newSource[T any](kind string, o options, open openFunc[T]) *emitter.Emitter[T] {
	r := &runner{kind: kind, logger: o.logger, clock: o.clock}
	out := emitter.New[T](o.emitterOptions()...)
	out.SetOptions(
		emitter.WithStart(func() { start(r, out, open) }),
		emitter.WithStop(r.stop),
	)
	return out
}

func start[T any](r *runner, out *emitter.Emitter[T], open openFunc[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	run, err := open(ctx, out.Emit)
	if err != nil {
		cancel()
		r.logger.Error("failed to start source",
			logger.Source(r.kind),
			logger.Emitter(out.Name()),
			logger.Error(err))
		return
	}

	done := make(chan struct{})
	r.cancel, r.done = cancel, done

	begin := r.clock.Now()
	go func() {
		defer close(done)
		run()
		r.logger.Debug("source loop exited",
			logger.Source(r.kind),
			logger.Emitter(out.Name()),
			logger.Duration(r.clock.Since(begin)))
	}()

	r.logger.Info("source started",
		logger.Source(r.kind),
		logger.Emitter(out.Name()))
}

// stop cancels the current run and waits for its loop. It must not be called from a
// subscriber running on the loop's own goroutine.
func (r *runner) stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done

	r.logger.Info("source stopped", logger.Source(r.kind))
}
