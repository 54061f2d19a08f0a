package emitter

import (
	"reflect"
	"slices"
	"sync"
)

// derive creates a child emitter that inherits the replay capacity, clock and logger
// of src as they are now. Later changes to src do not reach the child.
func derive[T, U any](src *Emitter[T]) *Emitter[U] {
	o := src.snapshot()
	return New[U](
		WithReplay(o.replayMax),
		WithClock(o.clock),
		WithLogger(o.logger),
	)
}

// Filter returns an emitter that receives the values of src for which pred returns true.
//
// Example:
//
//	evens := emitter.Filter(numbers, func(n int) bool { return n%2 == 0 })
func Filter[T any](src *Emitter[T], pred func(T) bool) *Emitter[T] {
	out := derive[T, T](src)
	src.SubscribeFunc(func(v T) {
		if pred(v) {
			out.Emit(v)
		}
	})
	return out
}

// Map returns an emitter that receives fn(v) for every value v of src.
//
// Example:
//
//	names := emitter.Map(users, func(u User) string { return u.Name })
func Map[T, U any](src *Emitter[T], fn func(T) U) *Emitter[U] {
	out := derive[T, U](src)
	src.SubscribeFunc(func(v T) {
		out.Emit(fn(v))
	})
	return out
}

// Reduce returns an emitter that receives the running accumulation of src, starting
// from seed. The accumulator belongs to the returned emitter's pipeline and persists
// for as long as src emits.
//
// Example:
//
//	total := emitter.Reduce(orders, func(sum int, o Order) int { return sum + o.Amount }, 0)
func Reduce[T, A any](src *Emitter[T], fn func(A, T) A, seed A) *Emitter[A] {
	out := derive[T, A](src)
	r := &reducer[T, A]{acc: seed, fn: fn}
	src.SubscribeFunc(func(v T) {
		out.Emit(r.next(v))
	})
	return out
}

type reducer[T, A any] struct {
	mu  sync.Mutex
	acc A
	fn  func(A, T) A
}

func (r *reducer[T, A]) next(v T) A {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.acc = r.fn(r.acc, v)
	return r.acc
}

// Cache returns an emitter that receives, on every value of src, the most recent size
// values including the new one, oldest first. Unlike Buffer it never resets.
// A size below 1 is treated as 1.
//
// Example:
//
//	windows := emitter.Cache(prices, 2) // 4, 8, 15 -> [4] [4 8] [8 15]
func Cache[T any](src *Emitter[T], size int) *Emitter[[]T] {
	out := derive[T, []T](src)
	w := &window[T]{size: max(size, 1)}
	src.SubscribeFunc(func(v T) {
		out.Emit(w.push(v))
	})
	return out
}

type window[T any] struct {
	mu     sync.Mutex
	size   int
	values []T
}

// push appends v and returns a snapshot the caller owns.
func (w *window[T]) push(v T) []T {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.values = append(w.values, v)
	if over := len(w.values) - w.size; over > 0 {
		w.values = slices.Delete(w.values, 0, over)
	}
	return slices.Clone(w.values)
}

// Unpack returns an emitter that receives every element of every slice emitted by src,
// in order, as separate emissions. Nested slices are not unpacked.
func Unpack[T any](src *Emitter[[]T]) *Emitter[T] {
	out := derive[[]T, T](src)
	src.SubscribeFunc(func(vs []T) {
		out.EmitAll(vs...)
	})
	return out
}

// UnpackAny is Unpack for dynamically typed values: slices and arrays are emitted
// element by element, anything else is forwarded unchanged.
func UnpackAny(src *Emitter[any]) *Emitter[any] {
	out := derive[any, any](src)
	src.SubscribeFunc(func(v any) {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			out.Emit(v)
			return
		}
		for i := range rv.Len() {
			out.Emit(rv.Index(i).Interface())
		}
	})
	return out
}
