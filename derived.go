package signals

// stepResult is what a Derived node's guarded compute step produces before
// auto-unwrap: either a plain value, or (for the *Signal constructors) a
// signal whose value the engine still needs to read through. Exactly one of
// the two is meaningful, distinguished by isSignal — a tagged union of raw
// value vs signal handle, realized as a small struct instead of an `any` +
// type switch so Read/ReadSignal stay fully generic and type-checked at the
// call site.
type stepResult[T any] struct {
	value    T
	signal   Signal[T]
	isSignal bool
}

// Derived is a lazily-evaluated, cached, dynamically-dependent signal. Its
// cached value is only ever written from inside a pull, which is only ever
// entered through Get (directly, or transitively as another Derived's
// source). Its state is set from inside a pull too, except that an input
// write resets it to DIRTY through markDirty.
type Derived[T any] struct {
	id    uint64
	name  string
	equal EqualFunc[T]
	instr Instrumentation

	state        nodeState
	cached       T
	everComputed bool

	// inputs is the transitive leaf-input set backing the current cached
	// value. Rebuilt on every non-skipped recomputation.
	inputs map[uint64]leaf

	// sources is the *fixed* set of signals this node reads directly,
	// established at construction, distinct from the transitive inputs
	// above. It never changes after the node is built — the dynamic part
	// of the graph is entirely in `inputs`, via auto-unwrap possibly
	// returning a different inner signal on each run.
	sources []reactiveNode

	// step runs the user compute function over the current source values
	// and returns its raw result, run with the reentrancy guard held.
	step func() stepResult[T]
}

func newDerived[T any](o Options[T]) *Derived[T] {
	return &Derived[T]{
		id:    newNodeID(),
		name:  o.Name,
		equal: o.resolveEqual(),
		instr: o.resolveInstrumentation(),
		state: dirty,
	}
}

// Get returns the current value, recomputing if and only if this node (or
// something it transitively depends on) is DIRTY. Fails if called from
// inside another derivation's compute function — derivations must consume
// other signals through Read/ReadSignal, not by calling Get directly on a
// captured reference.
func (d *Derived[T]) Get() T {
	requireReady(d.name, d.instr)
	d.ensureFresh()
	return d.cached
}

// TryGet is Get without the panic; see Input.TryGet.
func (d *Derived[T]) TryGet() (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if nr, ok := r.(*NonReactiveAccessError); ok {
				err = nr
				return
			}
			panic(r)
		}
	}()
	return d.Get(), nil
}

func (d *Derived[T]) markDirty() {
	d.state = dirty
}

// peek returns the cached value without the reentrancy check, assuming the
// node is already fresh. ensureFresh always pulls every source before
// running its own compute step, so by the time a step closure gathers
// source values this way, each source has already been brought current.
func (d *Derived[T]) peek() T { return d.cached }

// peeker is implemented by this package's own source types, letting
// Read/Read2/Read3 and their *Signal variants gather already-fresh source
// values for a compute call without re-entering the public, guarded Get.
type peeker[T any] interface {
	peek() T
}

// peekValue reads s's current value, preferring the unguarded peek when s
// is one of this package's own node types. A foreign Signal[T]
// implementation falls back to Get, same conservative treatment
// asReactiveNode gives a foreign source for pull-verdict purposes.
func peekValue[T any](s Signal[T]) T {
	if p, ok := s.(peeker[T]); ok {
		return p.peek()
	}
	return s.Get()
}

func (d *Derived[T]) nodeID() uint64 { return d.id }

// pull implements reactiveNode for Derived: ensure freshness, then report
// whether this node's cascade-skip verdict was CLEAN_SAME (so a consumer
// one level up can potentially skip its own recomputation too) and the
// current transitive leaf set.
func (d *Derived[T]) pull() (same bool, leaves map[uint64]leaf) {
	d.ensureFresh()
	return d.state == cleanSame, d.inputs
}

// ensureFresh is the pull algorithm: fast-path on a clean node, otherwise
// unsubscribe from last run's inputs, pull every source, either short-circuit
// on an all-unchanged verdict or recompute, and resubscribe to whatever the
// recomputation (or short-circuit) settled on as the current input set.
func (d *Derived[T]) ensureFresh() {
	// Fast path: already current.
	if d.state != dirty {
		d.instr.CacheHit(d.name)
		return
	}

	// Unsubscribe from the inputs this node depended on last time, before
	// finding out what it depends on this time.
	for _, lf := range d.inputs {
		lf.unsubscribe(d.id)
	}

	// Pull every direct source (recursively fresh-ing them), union their
	// transitive leaves, and track whether every one of them ended this
	// step CLEAN_SAME.
	allSourcesSame := true
	leaves := make(map[uint64]leaf)
	for _, src := range d.sources {
		same, srcLeaves := src.pull()
		if !same {
			allSourcesSame = false
		}
		for id, lf := range srcLeaves {
			leaves[id] = lf
		}
	}

	// A SAME verdict requires every source unchanged *and* this node having
	// computed before — short-circuit without ever calling compute. Since
	// every source reported unchanged, each source's own transitive leaf set
	// is identical to what it was last time, so the union we just built
	// equals d.inputs already; just resubscribe to it.
	if allSourcesSame && d.everComputed {
		d.resubscribeTo(d.inputs)
		d.state = cleanSame
		d.instr.CacheHit(d.name)
		return
	}

	// Run the guarded compute step, then auto-unwrap unguarded if it
	// returned a signal rather than a plain value.
	result := runCompute(d.step)
	value := result.value
	if result.isSignal {
		inner := asReactiveNode(result.signal)
		_, innerLeaves := inner.pull()
		for id, lf := range innerLeaves {
			leaves[id] = lf
		}
		value = result.signal.Get()
	}

	// Equality decides CLEAN_SAME vs CLEAN_DIFFERENT. The very first
	// computation has no real prior value to compare against, so it always
	// counts as a change.
	if d.everComputed && d.equal(d.cached, value) {
		d.state = cleanSame
	} else {
		d.state = cleanDifferent
	}
	d.cached = value
	d.everComputed = true
	d.instr.Recomputed(d.name)

	// Resubscribe to the freshly computed input set.
	d.inputs = leaves
	d.resubscribeTo(leaves)
}

func (d *Derived[T]) resubscribeTo(leaves map[uint64]leaf) {
	wr := makeWeakReader(d)
	for _, lf := range leaves {
		lf.subscribe(wr)
	}
}

// asReactiveNode recovers the non-generic reactiveNode view a source needs
// to expose for pull-verdict/leaf bookkeeping. *Input[T] and *Derived[T]
// both already satisfy reactiveNode directly. Any other Signal[T]
// implementation a caller hands in falls back to a conservative view: no
// leaf tracking, and never eligible for the CLEAN_SAME cascade-skip —
// "always recompute" is a safe, if unoptimized, answer for a type this
// package can't introspect.
func asReactiveNode[T any](s Signal[T]) reactiveNode {
	if rn, ok := s.(reactiveNode); ok {
		return rn
	}
	return foreignSource[T]{s}
}

type foreignSource[T any] struct{ s Signal[T] }

func (f foreignSource[T]) nodeID() uint64 { return 0 }
func (f foreignSource[T]) pull() (bool, map[uint64]leaf) {
	f.s.Get()
	return false, nil
}
