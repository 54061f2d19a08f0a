package emitter

import (
	"slices"
	"sync"
)

// Releaser is a release contract: it is consulted once per upstream value with the
// candidate data and a release function, and decides whether and when to call it.
// Releasers own their state; create a new one for every operator.
type Releaser[T any] func(data T, release func(T))

// Pass returns an emitter guarded by a gate that starts closed. A value arriving while
// the gate is open is forwarded and closes the gate; every value is then handed to r,
// whose release reopens the gate. The value that causes a release is not forwarded by
// that release: it only makes the next value eligible.
//
// Example:
//
//	// forward the first click after every tick
//	gated := emitter.Pass(clicks, emitter.OnEmit[Click](ticks))
func Pass[T any](src *Emitter[T], r Releaser[T]) *Emitter[T] {
	out := derive[T, T](src)
	g := &passGate{}
	src.SubscribeFunc(func(v T) {
		if g.take() {
			out.Emit(v)
		}
		r(v, func(T) { g.open() })
	})
	return out
}

type passGate struct {
	mu     sync.Mutex
	isOpen bool
}

// take closes the gate and reports whether it was open.
func (g *passGate) take() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	wasOpen := g.isOpen
	g.isOpen = false
	return wasOpen
}

func (g *passGate) open() {
	g.mu.Lock()
	g.isOpen = true
	g.mu.Unlock()
}

// Wait returns an emitter that receives whatever r releases. Every value of src is
// handed to r together with a release function that forwards its argument.
//
// Example:
//
//	// every third value
//	thirds := emitter.Wait(values, emitter.Count[int](3))
func Wait[T any](src *Emitter[T], r Releaser[T]) *Emitter[T] {
	out := derive[T, T](src)
	src.SubscribeFunc(func(v T) {
		r(v, out.Emit)
	})
	return out
}

// Buffer returns an emitter that receives batches of src values. Every value is
// appended to a buffer, then r is consulted with a copy of the buffer and a release
// function that swaps the buffer for an empty one and forwards what it held. The
// argument passed to release is ignored; releasing an empty buffer forwards an empty,
// non-nil slice.
//
// Example:
//
//	batches := emitter.Buffer(values, emitter.Length[int](10))
func Buffer[T any](src *Emitter[T], r Releaser[[]T]) *Emitter[[]T] {
	out := derive[T, []T](src)
	b := &batch[T]{values: make([]T, 0)}
	src.SubscribeFunc(func(v T) {
		snapshot := b.add(v)
		r(snapshot, func([]T) {
			out.Emit(b.swap())
		})
	})
	return out
}

type batch[T any] struct {
	mu     sync.Mutex
	values []T
}

func (b *batch[T]) add(v T) []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values = append(b.values, v)
	return slices.Clone(b.values)
}

func (b *batch[T]) swap() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	held := b.values
	b.values = make([]T, 0)
	return held
}
