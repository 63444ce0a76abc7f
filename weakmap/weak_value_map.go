package weakmap

import (
	"iter"

	"github.com/tuannh982/weakmap/utils/collections"
)

// WeakValueMap maps strongly held keys to weakly held values. An entry whose
// value has been collected stays in the map, stale, until it is reaped or
// overwritten.
type WeakValueMap[K comparable, V any] struct {
	values *values[K, V]
}

func NewWeakValueMap[K comparable, V any]() *WeakValueMap[K, V] {
	return &WeakValueMap[K, V]{
		values: newValues(collections.NewHashMap[K, Slot[V]]),
	}
}

// Get returns the value for k, or nil if there is no entry or it is stale.
func (m *WeakValueMap[K, V]) Get(k K) *V {
	return m.values.get(k)
}

// Set stores a fresh slot for v, replacing any previous one. A nil v removes
// the entry.
func (m *WeakValueMap[K, V]) Set(k K, v *V) {
	m.values.set(k, v)
}

// Count returns the number of slots, stale ones included. Reap first to get
// the number of live entries.
func (m *WeakValueMap[K, V]) Count() int {
	return m.values.count()
}

// Keys returns the keys of all slots, stale ones included.
func (m *WeakValueMap[K, V]) Keys() []K {
	return m.values.keys()
}

// Reaped returns a new map holding only the live entries of m.
func (m *WeakValueMap[K, V]) Reaped() *WeakValueMap[K, V] {
	return &WeakValueMap[K, V]{
		values: m.values.filtered(func(_ K, slot Slot[V]) bool {
			return slot.Alive()
		}),
	}
}

// Reap drops every stale entry from m.
func (m *WeakValueMap[K, V]) Reap() {
	m.values.replaceWith(m.Reaped().values)
}

// ToStrongMap returns the live entries in a map that owns its values.
func (m *WeakValueMap[K, V]) ToStrongMap() map[K]*V {
	out := make(map[K]*V, m.Count())
	m.values.rangeSlots(func(k K, slot Slot[V]) bool {
		if v := slot.Value(); v != nil {
			out[k] = v
		}
		return true
	})
	return out
}

// All yields every entry in storage order. Stale entries are yielded with a
// nil value.
func (m *WeakValueMap[K, V]) All() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		m.values.rangeSlots(func(k K, slot Slot[V]) bool {
			return yield(k, slot.Value())
		})
	}
}

func (m *WeakValueMap[K, V]) Cursor() *Cursor[K, V] {
	keys := m.values.keys()
	return newCursor(len(keys), func(i int) (K, *V, bool) {
		slot, ok := m.values.lookup(keys[i])
		return keys[i], slot.Value(), ok
	})
}
