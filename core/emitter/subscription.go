package emitter

import "sync"

// Subscription binds one subscriber to one emitter. Cancel removes the binding.
type Subscription[T any] struct {
	emitter    *Emitter[T]
	subscriber Subscriber[T]
	once       sync.Once
}

// Cancel removes the subscriber from the emitter. Calling it more than once,
// or after the subscriber was removed by other means, has no effect.
func (s *Subscription[T]) Cancel() {
	s.once.Do(func() {
		s.emitter.Unsubscribe(s.subscriber)
	})
}

// Emitter returns the emitter the subscription belongs to.
func (s *Subscription[T]) Emitter() *Emitter[T] {
	return s.emitter
}

// Subscriber returns the subscribed value.
func (s *Subscription[T]) Subscriber() Subscriber[T] {
	return s.subscriber
}
