package signals

// Instrumentation receives counts of engine activity for a single node, for
// observability: wired through Options so the hot path never pays for it
// unless a caller opts in. See internal/metrics for a Prometheus-backed
// implementation.
type Instrumentation interface {
	// Recomputed is called each time a Derived node actually ran its
	// compute function (the cascade-skip and fast-path reads do not count).
	Recomputed(name string)

	// CacheHit is called each time a read of a Derived node (its own Get, or
	// a pull by a downstream node) is served from the cached value without
	// recomputation, whether via the fast path (state != DIRTY on entry) or
	// the cascade-skip short-circuit.
	CacheHit(name string)

	// DirtyPropagated is called each time an input write marks a reader
	// node DIRTY.
	DirtyPropagated(name string)

	// NonReactiveAccess is called each time the reentrancy guard rejects a
	// call.
	NonReactiveAccess(name string)
}

type noopInstrumentation struct{}

func (noopInstrumentation) Recomputed(string)        {}
func (noopInstrumentation) CacheHit(string)          {}
func (noopInstrumentation) DirtyPropagated(string)   {}
func (noopInstrumentation) NonReactiveAccess(string) {}
