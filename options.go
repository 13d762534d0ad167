package signals

import "github.com/google/go-cmp/cmp"

// EqualFunc decides whether two values of a signal are equal: whether a
// write is a no-op, and whether a recomputed value counts as "changed" for
// downstream short-circuiting.
type EqualFunc[T any] func(a, b T) bool

// Options configures a single Input or Derived node. Name is purely for
// debugging (instrumentation labels, panic messages); Equal overrides the
// default identity comparison.
type Options[T any] struct {
	// Name is an optional display label. Unset means the node is unnamed.
	Name string

	// Equal overrides the default equality. Leave nil to use identity
	// comparison (see defaultEqual).
	Equal EqualFunc[T]

	// Instrumentation receives counts of recomputations, cache hits, dirty
	// propagations, and reentrancy violations for this node. Leave nil (the
	// zero value already is) to use the no-op default.
	Instrumentation Instrumentation
}

// resolveEqual returns opts.Equal if set, else the default equality.
func (o Options[T]) resolveEqual() EqualFunc[T] {
	if o.Equal != nil {
		return o.Equal
	}
	return defaultEqual[T]
}

func (o Options[T]) resolveInstrumentation() Instrumentation {
	if o.Instrumentation != nil {
		return o.Instrumentation
	}
	return noopInstrumentation{}
}

// defaultEqual implements identity/primitive equality for an unconstrained
// T. Go can only apply == to comparable values, and T here is deliberately
// unconstrained (signals must be able to hold slices, maps, and funcs too),
// so the comparison goes through the `any` interface and recovers from the
// panic Go raises when the dynamic type turns out to be non-comparable. In
// that case there is no sound notion of identity equality for T, so every
// write/recompute is conservatively treated as a change — correct, just not
// optimized.
func defaultEqual[T any](a, b T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return any(a) == any(b)
}

// DeepEqual returns an EqualFunc built on github.com/google/go-cmp, for
// callers whose T is a struct or slice and who want structural equality
// rather than defaultEqual's conservative "always different" fallback.
func DeepEqual[T any]() EqualFunc[T] {
	return func(a, b T) bool {
		return cmp.Equal(a, b)
	}
}
