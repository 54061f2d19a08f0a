package emitter

type subscriberKind uint8

const (
	kindInvalid subscriberKind = iota
	kindCallback
	kindForward
)

// callback boxes a function so that every registration has its own identity.
type callback[T any] struct {
	fn func(T)
}

// Subscriber receives values propagated by an Emitter. It is either a callback or
// another Emitter that the value is forwarded into.
//
// Subscribers are comparable: two values are equal when they were produced by the
// same Callback call, or by Forward with the same emitter.
type Subscriber[T any] struct {
	kind subscriberKind
	cb   *callback[T]
	dst  *Emitter[T]
}

// Callback creates a subscriber that invokes fn with every value.
// Each call returns a distinct subscriber; keep it to unsubscribe later.
func Callback[T any](fn func(T)) Subscriber[T] {
	if fn == nil {
		return Subscriber[T]{}
	}
	return Subscriber[T]{kind: kindCallback, cb: &callback[T]{fn: fn}}
}

// Forward creates a subscriber that re-emits every value on dst.
func Forward[T any](dst *Emitter[T]) Subscriber[T] {
	if dst == nil {
		return Subscriber[T]{}
	}
	return Subscriber[T]{kind: kindForward, dst: dst}
}

// IsForward reports whether the subscriber forwards into another emitter.
func (s Subscriber[T]) IsForward() bool {
	return s.kind == kindForward
}

func (s Subscriber[T]) valid() bool {
	return s.kind != kindInvalid
}

func (s Subscriber[T]) notify(v T) {
	switch s.kind {
	case kindCallback:
		s.cb.fn(v)
	case kindForward:
		s.dst.Emit(v)
	}
}
