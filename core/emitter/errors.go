package emitter

import "errors"

var (
	// ErrCircularReference is returned when an emitter is asked to subscribe to itself.
	ErrCircularReference = errors.New("emitter: circular reference, emitter cannot subscribe to itself")

	// ErrInvalidSubscriber is returned for the zero Subscriber value.
	ErrInvalidSubscriber = errors.New("emitter: invalid subscriber")

	// ErrRejected wraps the error of a future that rejected before it could be emitted.
	ErrRejected = errors.New("emitter: future rejected")
)
