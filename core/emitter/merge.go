package emitter

import "slices"

// Merge returns an emitter that re-emits the values of every source once started.
// Start subscribes the merged emitter to each source it is not yet subscribed to;
// Stop unsubscribes it from all of them. The merged emitter has its own replay cache,
// disabled by default; configure it with SetOptions.
//
// Example:
//
//	inputs := emitter.Merge(keyboard, mouse)
//	inputs.Start()
//	defer inputs.Stop()
func Merge[T any](sources ...*Emitter[T]) *Emitter[T] {
	sources = slices.DeleteFunc(slices.Clone(sources), func(src *Emitter[T]) bool {
		return src == nil
	})

	merged := New[T]()
	self := Forward(merged)

	merged.SetOptions(
		WithStart(func() {
			for _, src := range sources {
				if src == merged || src.Subscribed(self) {
					continue
				}
				_, _ = src.Subscribe(self)
			}
		}),
		WithStop(func() {
			for _, src := range sources {
				src.Unsubscribe(self)
			}
		}),
	)

	return merged
}
