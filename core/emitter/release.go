package emitter

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// ReleaseOption configures a release strategy.
type ReleaseOption func(*releaseOptions)

type releaseOptions struct {
	clock  clock.Clock
	offset int
}

func newReleaseOptions(opts []ReleaseOption) releaseOptions {
	o := releaseOptions{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithReleaseClock sets the clock used by time-based strategies.
func WithReleaseClock(c clock.Clock) ReleaseOption {
	return func(o *releaseOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithOffset sets the initial value of the Count strategy's counter.
func WithOffset(n int) ReleaseOption {
	return func(o *releaseOptions) {
		o.offset = n
	}
}

// OnEmit releases the most recent consultation every time trigger emits, whatever the
// payload. Repeated trigger emissions release the same consultation again.
func OnEmit[T, N any](trigger *Emitter[N]) Releaser[T] {
	p := &latestRelease[T]{}
	trigger.SubscribeFunc(func(N) {
		p.fire()
	})
	return p.consult
}

type latestRelease[T any] struct {
	mu      sync.Mutex
	data    T
	release func(T)
}

func (p *latestRelease[T]) consult(data T, release func(T)) {
	p.mu.Lock()
	p.data = data
	p.release = release
	p.mu.Unlock()
}

func (p *latestRelease[T]) fire() {
	p.mu.Lock()
	data, release := p.data, p.release
	p.mu.Unlock()

	if release != nil {
		release(data)
	}
}

// After releases every consultation d after it was made. Timers are independent.
func After[T any](d time.Duration, opts ...ReleaseOption) Releaser[T] {
	c := newReleaseOptions(opts).clock
	return func(data T, release func(T)) {
		c.AfterFunc(d, func() {
			release(data)
		})
	}
}

// DebounceRelease releases the latest consultation once d passes without another one.
// Each consultation cancels the pending timer and arms a new one.
func DebounceRelease[T any](d time.Duration, opts ...ReleaseOption) Releaser[T] {
	s := &debounceRelease[T]{clock: newReleaseOptions(opts).clock, period: d}
	return s.consult
}

type debounceRelease[T any] struct {
	mu      sync.Mutex
	clock   clock.Clock
	period  time.Duration
	gen     uint64
	timer   *clock.Timer
	data    T
	release func(T)
}

func (s *debounceRelease[T]) consult(data T, release func(T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.data = data
	s.release = release
	s.gen++
	gen := s.gen
	s.timer = s.clock.AfterFunc(s.period, func() {
		s.fire(gen)
	})
}

func (s *debounceRelease[T]) fire(gen uint64) {
	s.mu.Lock()
	// A timer that lost the race with Stop must not release newer data.
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	data, release := s.data, s.release
	s.mu.Unlock()

	release(data)
}

// Timeout opens a window on the first consultation and releases that consultation's
// data d later. Consultations made while the window is open are ignored; the next
// consultation after the release opens a new window.
func Timeout[T any](d time.Duration, opts ...ReleaseOption) Releaser[T] {
	s := &timeoutRelease[T]{clock: newReleaseOptions(opts).clock, period: d}
	return s.consult
}

type timeoutRelease[T any] struct {
	mu      sync.Mutex
	clock   clock.Clock
	period  time.Duration
	active  bool
	data    T
	release func(T)
}

func (s *timeoutRelease[T]) consult(data T, release func(T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}
	s.active = true
	s.data = data
	s.release = release
	s.clock.AfterFunc(s.period, s.fire)
}

func (s *timeoutRelease[T]) fire() {
	s.mu.Lock()
	s.active = false
	data, release := s.data, s.release
	s.mu.Unlock()

	release(data)
}

// Count releases every n-th consultation and then resets. The counter starts at the
// WithOffset value (0 by default), so with an offset of k the first release happens on
// consultation n-k. A non-positive n never releases.
func Count[T any](n int, opts ...ReleaseOption) Releaser[T] {
	s := &countRelease{n: n, count: newReleaseOptions(opts).offset}
	return func(data T, release func(T)) {
		if s.hit() {
			release(data)
		}
	}
}

type countRelease struct {
	mu    sync.Mutex
	n     int
	count int
}

func (s *countRelease) hit() bool {
	if s.n <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	if s.count >= s.n {
		s.count = 0
		return true
	}
	return false
}

// Length releases when the consulted buffer holds exactly n values.
// Use it with Buffer.
func Length[T any](n int) Releaser[[]T] {
	return func(data []T, release func([]T)) {
		if len(data) == n {
			release(data)
		}
	}
}
