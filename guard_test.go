package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonReactiveAccessErrorMessage(t *testing.T) {
	unnamed := &NonReactiveAccessError{}
	assert.Equal(t, "signals: non-reactive access to a signal from inside a derivation", unnamed.Error())

	named := &NonReactiveAccessError{Node: "counter"}
	assert.Equal(t, `signals: non-reactive access to signal "counter" from inside a derivation`, named.Error())
}

func TestDisableReentrancyGuardSuppressesPanic(t *testing.T) {
	DisableReentrancyGuard()
	defer EnableReentrancyGuard()

	a := NewInput(1)
	d := Read(a, func(_ int) int { return a.Get() })

	assert.NotPanics(t, func() {
		assert.Equal(t, 1, d.Get())
	})
}

func TestGuardRestoredAfterOrdinaryPanicInCompute(t *testing.T) {
	a := NewInput(1)
	d := Read(a, func(_ int) int { panic("boom") })

	assert.PanicsWithValue(t, "boom", func() { d.Get() })

	// The guard must have been restored to READY, so a plain read works.
	assert.Equal(t, 1, a.Get())
}
