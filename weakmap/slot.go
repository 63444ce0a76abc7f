package weakmap

import "weak"

// Slot holds a non-owning reference to a value. Holding a Slot never keeps
// the value alive.
type Slot[V any] struct {
	ref weak.Pointer[V]
}

func NewSlot[V any](v *V) Slot[V] {
	return Slot[V]{ref: weak.Make(v)}
}

// Value returns the referent, or nil once it has been collected.
func (s Slot[V]) Value() *V {
	return s.ref.Value()
}

func (s Slot[V]) Alive() bool {
	return s.ref.Value() != nil
}
