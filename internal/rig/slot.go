package rig

// Slot is either a resolved triad or nothing. The zero value is unresolved.
type Slot[T any] struct {
	triad    T
	resolved bool
}

// Resolved wraps a complete triad.
func Resolved[T any](triad T) Slot[T] {
	return Slot[T]{triad: triad, resolved: true}
}

// Get returns the triad and whether the slot is resolved.
func (s Slot[T]) Get() (T, bool) {
	return s.triad, s.resolved
}

func (s Slot[T]) IsResolved() bool {
	return s.resolved
}
