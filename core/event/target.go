package event

import "context"

// Target receives dispatched events.
type Target interface {
	// Dispatch delivers one event. Implementations must be safe for concurrent use.
	Dispatch(ctx context.Context, evt Event) error
}

// TargetFunc adapts a function to the Target interface.
type TargetFunc func(ctx context.Context, evt Event) error

// Dispatch calls f.
func (f TargetFunc) Dispatch(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}
