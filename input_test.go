package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputGetSet(t *testing.T) {
	a := NewInput(1)
	assert.Equal(t, 1, a.Get())

	a.Set(2)
	assert.Equal(t, 2, a.Get())
}

func TestInputSetNoopOnEqualValue(t *testing.T) {
	a := NewInput(1)
	d := Read(a, func(n int) int { return n })
	assert.Equal(t, 1, d.Get())

	a.Set(1) // same value: must not dirty d
	assert.Equal(t, cleanDifferent, d.state, "unchanged write must not mark downstream dirty")
	assert.Equal(t, 1, d.Get())
}

func TestInputUpdate(t *testing.T) {
	a := NewInput(10)
	a.Update(func(n int) int { return n + 5 })
	assert.Equal(t, 15, a.Get())
}

func TestInputTryGetTrySet(t *testing.T) {
	a := NewInput(1)
	v, err := a.TryGet()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	err = a.TrySet(2)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Get())
}

func TestInputReentrantGetPanics(t *testing.T) {
	a := NewInput(1)
	d := Read(a, func(_ int) int { return a.Get() })

	assert.PanicsWithValue(t, &NonReactiveAccessError{Node: ""}, func() {
		d.Get()
	})
}

func TestInputTryGetReportsReentrancy(t *testing.T) {
	a := NewInput(1, Options[int]{Name: "a"})
	d := Read(a, func(_ int) int {
		_, err := a.TryGet()
		if err != nil {
			panic(err)
		}
		return 0
	})

	assert.PanicsWithError(t, (&NonReactiveAccessError{Node: "a"}).Error(), func() {
		d.Get()
	})
}

func TestInputAsReadonly(t *testing.T) {
	a := NewInput(3)
	ro := a.AsReadonly()
	assert.Equal(t, 3, ro.Get())

	a.Set(4)
	assert.Equal(t, 4, ro.Get())
}

func TestInputSetToleratesDeadWeakReader(t *testing.T) {
	a := NewInput(1)
	func() {
		// d goes out of scope at the end of this closure with no other
		// strong reference, so its weak reader entry should eventually be
		// collected and tolerated as dead on the next Set.
		d := Read(a, func(n int) int { return n })
		d.Get()
	}()

	assert.NotPanics(t, func() {
		a.Set(2)
	})
}
