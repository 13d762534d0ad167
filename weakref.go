package signals

import "weak"

// weakReader is a type-erased weak reference to a derived node acting as a
// reader of some input leaf. weak.Pointer[T] is generic over the concrete
// pointee type, but an Input[T]'s readers are *Derived[S] for many
// different S, so each concrete *Derived[S] is wrapped here behind a
// non-generic closure the moment it subscribes.
type weakReader struct {
	id  uint64
	get func() dirtyMarker
}

// dirtyMarker is the minimal capability a weakly-held reader must expose:
// the ability to be told one of its transitive inputs changed.
type dirtyMarker interface {
	markDirty()
}

// makeWeakReader captures a weak reference to d, type-erasing its value
// type S. The returned weakReader's get method resolves the weak pointer
// each time it's called; once d is no longer strongly reachable from
// anywhere else, get returns nil and the entry is a tolerated, purgeable
// dead reference.
func makeWeakReader[S any](d *Derived[S]) weakReader {
	ptr := weak.Make(d)
	return weakReader{
		id: d.id,
		get: func() dirtyMarker {
			v := ptr.Value()
			if v == nil {
				return nil
			}
			return v
		},
	}
}
