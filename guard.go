package signals

import (
	"fmt"
	"sync/atomic"
)

// computing is the process-wide reentrancy guard. The engine assumes a
// single cooperative task — thread safety beyond that is out of scope — so
// this is a plain package variable, not a mutex-protected one: there is
// exactly one caller in flight at any instant, by construction.
var computing bool

// guardDisabled lets diagnostics turn the reentrancy guard off entirely.
// It's an atomic.Bool rather than a plain bool purely so that flipping it
// from a test or a debugger doesn't itself need to reason about the
// single-task assumption above.
var guardDisabled atomic.Bool

// DisableReentrancyGuard turns off NonReactiveAccess checks process-wide.
// It exists for diagnostics only — e.g. stepping through a derivation in a
// debugger where the guard's panics would otherwise fire on every inspected
// frame. Production code should not call this.
func DisableReentrancyGuard() { guardDisabled.Store(true) }

// EnableReentrancyGuard restores the default, checked behavior.
func EnableReentrancyGuard() { guardDisabled.Store(false) }

// NonReactiveAccessError reports that code running inside a derivation's
// compute function tried to read or write a signal directly instead of
// going through the reactive read API.
type NonReactiveAccessError struct {
	// Node is the optional name of the signal that was accessed non-reactively.
	Node string
}

func (e *NonReactiveAccessError) Error() string {
	if e.Node == "" {
		return "signals: non-reactive access to a signal from inside a derivation"
	}
	return fmt.Sprintf("signals: non-reactive access to signal %q from inside a derivation", e.Node)
}

// requireReady panics with a *NonReactiveAccessError if called while a
// derivation's compute function is running. The guard is always reset to
// ready before the error escapes.
func requireReady(name string, instr Instrumentation) {
	if !computing || guardDisabled.Load() {
		return
	}
	computing = false
	instr.NonReactiveAccess(name)
	panic(&NonReactiveAccessError{Node: name})
}

// runCompute invokes f with the reentrancy guard held, guaranteeing the
// guard is restored to ready even if f panics — whether that panic is a
// NonReactiveAccessError raised by requireReady above, or an ordinary panic
// from user code in compute. Either way the panic continues unwinding past
// this frame and surfaces to whatever Get call triggered it; there is no
// recover here.
func runCompute[T any](f func() T) T {
	wasComputing := computing
	computing = true
	defer func() { computing = wasComputing }()
	return f()
}
