package signals

// Read constructs a derived signal: when the result is read after src may
// have changed, f is invoked with src's current value to produce it — unless
// src is a derived node whose recomputation produced an equal value, in which
// case f is skipped and the cached result kept. The returned node starts
// DIRTY; f never runs until something reads the result.
func Read[T, S any](src Signal[T], f func(T) S, opts ...Options[S]) *Derived[S] {
	var o Options[S]
	if len(opts) > 0 {
		o = opts[0]
	}
	d := newDerived[S](o)
	d.sources = []reactiveNode{asReactiveNode(src)}
	d.step = func() stepResult[S] {
		return stepResult[S]{value: f(peekValue(src))}
	}
	return d
}

// ReadSignal is Read's auto-unwrap counterpart: f returns another signal
// rather than a plain value. The engine transparently reads through the
// returned signal and merges its transitive inputs into this node's own, so
// a conditional that picks between two branch signals rewires its
// dependencies dynamically as the chosen branch changes.
func ReadSignal[T, S any](src Signal[T], f func(T) Signal[S], opts ...Options[S]) *Derived[S] {
	var o Options[S]
	if len(opts) > 0 {
		o = opts[0]
	}
	d := newDerived[S](o)
	d.sources = []reactiveNode{asReactiveNode(src)}
	d.step = func() stepResult[S] {
		return stepResult[S]{signal: f(peekValue(src)), isSignal: true}
	}
	return d
}

// Read2 is the two-source form of Read: f runs whenever either source is
// dirty, and the cascade-skip optimization applies jointly — CLEAN_SAME
// only if *both* sources report CLEAN_SAME.
func Read2[A, B, S any](a Signal[A], b Signal[B], f func(A, B) S, opts ...Options[S]) *Derived[S] {
	var o Options[S]
	if len(opts) > 0 {
		o = opts[0]
	}
	d := newDerived[S](o)
	d.sources = []reactiveNode{asReactiveNode(a), asReactiveNode(b)}
	d.step = func() stepResult[S] {
		return stepResult[S]{value: f(peekValue(a), peekValue(b))}
	}
	return d
}

// Read2Signal is Read2's auto-unwrap counterpart: f can return one of its
// own signal arguments rather than a plain value.
func Read2Signal[A, B, S any](a Signal[A], b Signal[B], f func(A, B) Signal[S], opts ...Options[S]) *Derived[S] {
	var o Options[S]
	if len(opts) > 0 {
		o = opts[0]
	}
	d := newDerived[S](o)
	d.sources = []reactiveNode{asReactiveNode(a), asReactiveNode(b)}
	d.step = func() stepResult[S] {
		return stepResult[S]{signal: f(peekValue(a), peekValue(b)), isSignal: true}
	}
	return d
}

// Read3 is the three-source form of Read.
func Read3[A, B, C, S any](a Signal[A], b Signal[B], c Signal[C], f func(A, B, C) S, opts ...Options[S]) *Derived[S] {
	var o Options[S]
	if len(opts) > 0 {
		o = opts[0]
	}
	d := newDerived[S](o)
	d.sources = []reactiveNode{asReactiveNode(a), asReactiveNode(b), asReactiveNode(c)}
	d.step = func() stepResult[S] {
		return stepResult[S]{value: f(peekValue(a), peekValue(b), peekValue(c))}
	}
	return d
}

// Read3Signal is Read3's auto-unwrap counterpart: f can return one of its
// own signal arguments, e.g. picking between a and b based on a third flag
// source.
func Read3Signal[A, B, C, S any](a Signal[A], b Signal[B], c Signal[C], f func(A, B, C) Signal[S], opts ...Options[S]) *Derived[S] {
	var o Options[S]
	if len(opts) > 0 {
		o = opts[0]
	}
	d := newDerived[S](o)
	d.sources = []reactiveNode{asReactiveNode(a), asReactiveNode(b), asReactiveNode(c)}
	d.step = func() stepResult[S] {
		return stepResult[S]{signal: f(peekValue(a), peekValue(b), peekValue(c)), isSignal: true}
	}
	return d
}
