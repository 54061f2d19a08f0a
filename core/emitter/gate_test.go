package emitter_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/emitter/core/emitter"
)

func TestPass(t *testing.T) {
	t.Parallel()

	t.Run("forwards the first value after a release", func(t *testing.T) {
		t.Parallel()

		type payload struct{ Name string }

		trigger := emitter.New[struct{}]()
		src := emitter.New[payload]()
		out := record(emitter.Pass(src, emitter.OnEmit[payload](trigger)))

		src.Emit(payload{Name: "foo"})
		trigger.Emit(struct{}{})
		src.Emit(payload{Name: "bar"})
		src.Emit(payload{Name: "baz"})

		assert.Equal(t, []payload{{Name: "bar"}}, out.Values())
	})

	t.Run("gate starts closed", func(t *testing.T) {
		t.Parallel()

		src := emitter.New[int]()
		out := record(emitter.Pass(src, func(int, func(int)) {}))

		src.EmitAll(1, 2, 3)
		assert.Empty(t, out.Values())
	})

	t.Run("count release opens the gate", func(t *testing.T) {
		t.Parallel()

		src := emitter.New[int]()
		out := record(emitter.Pass(src, emitter.Count[int](2)))

		src.EmitAll(1, 2, 3, 4, 5, 6)
		assert.Equal(t, []int{3, 5}, out.Values())
	})
}

func TestWait(t *testing.T) {
	t.Parallel()

	t.Run("timeout releases the first value of the window", func(t *testing.T) {
		t.Parallel()

		clk := clock.NewMock()
		src := emitter.New[int]()
		out := record(emitter.Wait(src, emitter.Timeout[int](500*time.Millisecond, emitter.WithReleaseClock(clk))))

		src.Emit(42)
		clk.Add(400 * time.Millisecond)
		src.Emit(84)
		assert.Empty(t, out.Values())

		clk.Add(100 * time.Millisecond)
		out.waitLen(t, 1)

		clk.Add(time.Second)
		time.Sleep(10 * time.Millisecond)
		assert.Equal(t, []int{42}, out.Values())
	})

	t.Run("timeout opens a new window after release", func(t *testing.T) {
		t.Parallel()

		clk := clock.NewMock()
		src := emitter.New[int]()
		out := record(emitter.Wait(src, emitter.Timeout[int](100*time.Millisecond, emitter.WithReleaseClock(clk))))

		src.Emit(1)
		clk.Add(100 * time.Millisecond)
		out.waitLen(t, 1)

		src.Emit(2)
		clk.Add(100 * time.Millisecond)
		out.waitLen(t, 2)
		assert.Equal(t, []int{1, 2}, out.Values())
	})

	t.Run("after releases every value", func(t *testing.T) {
		t.Parallel()

		clk := clock.NewMock()
		src := emitter.New[int]()
		out := record(emitter.Wait(src, emitter.After[int](100*time.Millisecond, emitter.WithReleaseClock(clk))))

		src.Emit(1)
		clk.Add(30 * time.Millisecond)
		src.Emit(2)
		assert.Empty(t, out.Values())

		clk.Add(70 * time.Millisecond)
		out.waitLen(t, 1)
		clk.Add(30 * time.Millisecond)
		out.waitLen(t, 2)
		assert.Equal(t, []int{1, 2}, out.Values())
	})

	t.Run("count", func(t *testing.T) {
		t.Parallel()

		src := emitter.New[int]()
		out := record(emitter.Wait(src, emitter.Count[int](3)))

		src.EmitAll(1, 2, 3, 4, 5, 6, 7)
		assert.Equal(t, []int{3, 6}, out.Values())
	})

	t.Run("count with offset", func(t *testing.T) {
		t.Parallel()

		src := emitter.New[int]()
		out := record(emitter.Wait(src, emitter.Count[int](3, emitter.WithOffset(2))))

		src.EmitAll(1, 2, 3, 4, 5)
		assert.Equal(t, []int{1, 4}, out.Values())
	})

	t.Run("non-positive count never releases", func(t *testing.T) {
		t.Parallel()

		src := emitter.New[int]()
		out := record(emitter.Wait(src, emitter.Count[int](0)))

		src.EmitAll(1, 2, 3)
		assert.Empty(t, out.Values())
	})
}

func TestBuffer(t *testing.T) {
	t.Parallel()

	t.Run("releases on trigger", func(t *testing.T) {
		t.Parallel()

		trigger := emitter.New[string]()
		src := emitter.New[int]()
		out := record(emitter.Buffer(src, emitter.OnEmit[[]int](trigger)))

		src.EmitAll(4, 8, 15, 16)
		assert.Empty(t, out.Values())

		trigger.Emit("flush")
		assert.Equal(t, [][]int{{4, 8, 15, 16}}, out.Values())

		trigger.Emit("flush")
		assert.Equal(t, [][]int{{4, 8, 15, 16}, {}}, out.Values())
	})

	t.Run("trigger before any value releases nothing", func(t *testing.T) {
		t.Parallel()

		trigger := emitter.New[struct{}]()
		src := emitter.New[int]()
		out := record(emitter.Buffer(src, emitter.OnEmit[[]int](trigger)))

		trigger.Emit(struct{}{})
		assert.Empty(t, out.Values())
	})

	t.Run("length", func(t *testing.T) {
		t.Parallel()

		src := emitter.New[int]()
		out := record(emitter.Buffer(src, emitter.Length[int](2)))

		src.EmitAll(1, 2, 3, 4, 5)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}}, out.Values())
	})

	t.Run("debounce release", func(t *testing.T) {
		t.Parallel()

		clk := clock.NewMock()
		src := emitter.New[int]()
		out := record(emitter.Buffer(src, emitter.DebounceRelease[[]int](time.Second, emitter.WithReleaseClock(clk))))

		src.EmitAll(1, 2)
		clk.Add(500 * time.Millisecond)
		src.Emit(3)
		clk.Add(500 * time.Millisecond)
		assert.Empty(t, out.Values())

		clk.Add(500 * time.Millisecond)
		out.waitLen(t, 1)
		assert.Equal(t, [][]int{{1, 2, 3}}, out.Values())
	})
}
