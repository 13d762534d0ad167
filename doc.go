// Package signals implements a fine-grained, pull-based reactive
// computation engine: a lazy, cached, demand-driven dependency graph where
// mutating an Input invalidates exactly the Derived nodes that transitively
// read it, and the next read of each recomputes only what's actually stale.
//
// # Core types
//
// Input[T] is a writable leaf. Derived[T] is a read-only node computed from
// one or more sources via Read, ReadSignal, or their two- and three-source
// variants.
//
//	count := signals.NewInput(1)
//	doubled := signals.Read(count, func(n int) int { return n * 2 })
//
//	doubled.Get() // 2 — compute runs for the first time here, not at construction
//	count.Set(4)
//	doubled.Get() // 8 — count's write marked doubled DIRTY; this Get recomputes
//
// # Laziness and caching
//
// Constructing a Derived never runs its compute function. The function
// runs the first time Get is called, and then again only when something it
// transitively reads has changed:
//
//	var calls int
//	c := signals.Read(count, func(n int) int { calls++; return n })
//	// calls == 0
//	c.Get()
//	// calls == 1
//	c.Get()
//	// calls == 1 — nothing changed, so no recomputation
//
// # Dynamic dependencies via auto-unwrap
//
// A compute function can return another signal instead of a plain value.
// ReadSignal reads straight through it and adopts its dependencies as its
// own, which is what lets a conditional's dependency set change at runtime:
//
//	x, y, cond := signals.NewInput("x"), signals.NewInput("y"), signals.NewInput(true)
//	picked := signals.ReadSignal(cond, func(c bool) signals.Signal[string] {
//	    if c {
//	        return signals.Read(x, func(v string) string { return v })
//	    }
//	    return signals.Read(y, func(v string) string { return v })
//	})
//
// Writes to y never dirty picked while cond is true: picked's transitive
// inputs are {cond, x}, not {cond, x, y}, until cond flips.
//
// # Reentrancy
//
// A compute function must consume other signals only through the values it
// is handed (or through Read/ReadSignal building new derived nodes) — never
// by calling Get/Set directly on a captured signal from inside compute. The
// engine enforces this process-wide: any such call panics with
// *NonReactiveAccessError.
//
// # Concurrency
//
// The engine assumes a single cooperative task. There is no locking, and no
// support for concurrent Get/Set calls from multiple goroutines — that is
// explicitly out of scope, not an oversight.
package signals
