package emitter

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Delay returns an emitter that receives every value of src d after it was emitted,
// measured on the clock of src. Each value has its own timer, so values emitted close
// together may arrive out of order when the scheduler is late.
func Delay[T any](src *Emitter[T], d time.Duration) *Emitter[T] {
	out := derive[T, T](src)
	c := src.snapshot().clock
	src.SubscribeFunc(func(v T) {
		c.AfterFunc(d, func() {
			out.Emit(v)
		})
	})
	return out
}

// DebounceTime returns an emitter that receives the latest value of src once src has
// been silent for d. Every value cancels the pending timer and arms a new one.
func DebounceTime[T any](src *Emitter[T], d time.Duration) *Emitter[T] {
	return Wait(src, DebounceRelease[T](d, WithReleaseClock(src.snapshot().clock)))
}

// AuditTime returns an emitter that, d after the first value of a window, receives the
// most recent value seen during that window. Values arriving while the timer is pending
// only replace the candidate.
func AuditTime[T any](src *Emitter[T], d time.Duration) *Emitter[T] {
	out := derive[T, T](src)
	a := &auditor[T]{clock: src.snapshot().clock, period: d, emit: out.Emit}
	src.SubscribeFunc(a.push)
	return out
}

type auditor[T any] struct {
	mu     sync.Mutex
	clock  clock.Clock
	period time.Duration
	latest T
	timer  *clock.Timer
	emit   func(T)
}

func (a *auditor[T]) push(v T) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.latest = v
	if a.timer != nil {
		return
	}
	a.timer = a.clock.AfterFunc(a.period, a.flush)
}

func (a *auditor[T]) flush() {
	a.mu.Lock()
	v := a.latest
	a.timer = nil
	a.mu.Unlock()

	a.emit(v)
}

// Debounce returns an emitter that receives the latest value of src once the duration
// emitter selected for that value emits. A newer value cancels the pending duration
// subscription and selects a new one. A nil duration emitter forwards the value at once.
func Debounce[T, N any](src *Emitter[T], selector func(T) *Emitter[N]) *Emitter[T] {
	out := derive[T, T](src)
	g := &durationGate[T, N]{emit: out.Emit, restart: true}
	src.SubscribeFunc(func(v T) {
		g.push(v, selector)
	})
	return out
}

// Audit returns an emitter that opens a window on the first value of src, selecting a
// duration emitter for it; when that emitter emits, the most recent value of the window
// is forwarded and the window closes.
func Audit[T, N any](src *Emitter[T], selector func(T) *Emitter[N]) *Emitter[T] {
	out := derive[T, T](src)
	g := &durationGate[T, N]{emit: out.Emit}
	src.SubscribeFunc(func(v T) {
		g.push(v, selector)
	})
	return out
}

// durationGate holds one value until a duration emitter fires. epoch identifies the
// current window so that stale duration subscriptions never release.
type durationGate[T, N any] struct {
	mu      sync.Mutex
	latest  T
	active  bool
	epoch   uint64
	sub     *Subscription[N]
	restart bool
	emit    func(T)
}

func (g *durationGate[T, N]) push(v T, selector func(T) *Emitter[N]) {
	g.mu.Lock()
	g.latest = v
	if g.active && !g.restart {
		g.mu.Unlock()
		return
	}
	prev := g.sub
	g.sub = nil
	g.epoch++
	epoch := g.epoch
	g.active = true
	g.mu.Unlock()

	if prev != nil {
		prev.Cancel()
	}

	dur := selector(v)
	if dur == nil {
		g.fire(epoch)
		return
	}

	sub := dur.SubscribeFunc(func(N) {
		g.fire(epoch)
	})

	g.mu.Lock()
	if g.active && g.epoch == epoch {
		g.sub = sub
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	// Fired during subscribe, or superseded by a newer value.
	sub.Cancel()
}

func (g *durationGate[T, N]) fire(epoch uint64) {
	g.mu.Lock()
	if !g.active || g.epoch != epoch {
		g.mu.Unlock()
		return
	}
	g.active = false
	v := g.latest
	sub := g.sub
	g.sub = nil
	g.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
	g.emit(v)
}
