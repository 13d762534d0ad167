package signals

// Input is a writable reactive leaf. Its inputs set is always just {self};
// there is no caching or compute function — Get simply returns the stored
// value, and Set decides whether to dirty readers based on equality.
type Input[T any] struct {
	id    uint64
	name  string
	value T
	equal EqualFunc[T]
	instr Instrumentation

	// readers holds a weak reference to every Derived node whose current
	// (transitive) inputs set contains this leaf — not just its immediate
	// consumers. A single write reaches all of them directly; there is no
	// chain to walk.
	readers map[uint64]weakReader
}

// NewInput constructs a writable leaf signal seeded with initial.
func NewInput[T any](initial T, opts ...Options[T]) *Input[T] {
	var o Options[T]
	if len(opts) > 0 {
		o = opts[0]
	}
	return &Input[T]{
		id:      newNodeID(),
		name:    o.Name,
		value:   initial,
		equal:   o.resolveEqual(),
		instr:   o.resolveInstrumentation(),
		readers: make(map[uint64]weakReader),
	}
}

// Get returns the current value. Fails (panics with *NonReactiveAccessError)
// if called from inside a derivation's compute function.
func (in *Input[T]) Get() T {
	requireReady(in.name, in.instr)
	return in.value
}

// peek returns the current value without the reentrancy check. It backs the
// engine's own reads of a declared source while gathering values for a
// pending compute call — that gathering runs under the guard, but it isn't
// the non-reactive access the guard exists to catch.
func (in *Input[T]) peek() T { return in.value }

// TryGet is Get without the panic: it reports a reentrancy violation as an
// error instead, for callers that would rather not unwind via panic/recover.
func (in *Input[T]) TryGet() (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if nr, ok := r.(*NonReactiveAccessError); ok {
				err = nr
				return
			}
			panic(r)
		}
	}()
	return in.Get(), nil
}

// Set replaces the stored value. If the new value equals the current one
// (per the node's EqualFunc), the write is a no-op and no reader is
// touched. Otherwise every live reader currently depending on this input is
// marked DIRTY; readers are not walked recursively — that happens lazily,
// on the next pull of each dirtied node.
func (in *Input[T]) Set(v T) {
	requireReady(in.name, in.instr)
	if in.equal(in.value, v) {
		return
	}
	in.value = v

	for id, wr := range in.readers {
		reader := wr.get()
		if reader == nil {
			// Dead weak reference: the reader is no longer strongly
			// reachable from anywhere. Tolerate it during iteration and
			// purge it now that we're already walking the map.
			delete(in.readers, id)
			continue
		}
		reader.markDirty()
		in.instr.DirtyPropagated(in.name)
	}
}

// TrySet is Set without the panic; see TryGet.
func (in *Input[T]) TrySet(v T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if nr, ok := r.(*NonReactiveAccessError); ok {
				err = nr
				return
			}
			panic(r)
		}
	}()
	in.Set(v)
	return nil
}

// Update transforms the stored value via fn, as a single Set call.
func (in *Input[T]) Update(fn func(T) T) {
	in.Set(fn(in.Get()))
}

// AsReadonly exposes in as a Get-only Signal[T], hiding Set/Update so
// encapsulating code can hand it out without granting write access.
func (in *Input[T]) AsReadonly() Signal[T] {
	return readonly[T]{in}
}

// nodeID, leafID, subscribe, unsubscribe, nodeID()/pull(): Input implements
// both `leaf` (it is one, trivially: inputs = {self}) and `reactiveNode`
// (so it can appear directly as a Derived's source).

func (in *Input[T]) leafID() uint64 { return in.id }

func (in *Input[T]) subscribe(r weakReader) {
	in.readers[r.id] = r
}

func (in *Input[T]) unsubscribe(id uint64) {
	delete(in.readers, id)
}

func (in *Input[T]) nodeID() uint64 { return in.id }

// pull for an Input never itself recomputes and is never eligible for the
// CLEAN_SAME cascade-skip: an Input has no notion of "ended this step
// unchanged," it simply *is* its current value. A consuming Derived always
// falls through to calling its own compute function when an Input is a
// direct source, and relies on its own post-compute equality check for
// downstream short-circuiting instead.
func (in *Input[T]) pull() (same bool, leaves map[uint64]leaf) {
	return false, map[uint64]leaf{in.id: in}
}
