package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/emitter/core/emitter"
	"github.com/dmitrymomot/emitter/core/logger"
)

// FileWatch returns an emitter that watches paths while started and emits every
// filesystem event. Watcher errors are logged.
//
// Example:
//
//	changes := emitter.Filter(source.FileWatch([]string{"config.yaml"}), func(ev fsnotify.Event) bool {
//	    return ev.Has(fsnotify.Write)
//	})
func FileWatch(paths []string, opts ...Option) *emitter.Emitter[fsnotify.Event] {
	o := newOptions(opts)
	return newSource("filewatch", o, func(ctx context.Context, emit func(fsnotify.Event)) (func(), error) {
		if len(paths) == 0 {
			return nil, ErrNoPaths
		}

		w, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWatchFailed, err)
		}
		for _, p := range paths {
			if err := w.Add(p); err != nil {
				return nil, errors.Join(fmt.Errorf("%w: %s: %w", ErrWatchFailed, p, err), w.Close())
			}
		}

		return func() {
			defer w.Close()
			for {
				select {
				case <-ctx.Done():
					return
				case ev, ok := <-w.Events:
					if !ok {
						return
					}
					emit(ev)
				case err, ok := <-w.Errors:
					if !ok {
						return
					}
					o.logger.WarnContext(ctx, "file watcher error",
						logger.Source("filewatch"),
						logger.Emitter(o.name),
						logger.Error(err))
				}
			}
		}, nil
	})
}
