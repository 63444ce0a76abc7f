package weakmap

import (
	"iter"

	"github.com/tuannh982/weakmap/utils/collections"
)

// WeakKeyMap maps weakly held keys to values. Keys are matched by their
// Hash and Equals methods, so a lookup does not need the original key
// pointer, only an equal key.
//
// By default values are held weakly as well. With retainValuesByKey the
// token of each key owns its value, so the value lives as long as the entry
// is reachable by its key, and is released on the first reap after the key
// is collected.
type WeakKeyMap[K Hashable[K], V any] struct {
	values            *values[*KeyToken[K, V], V]
	retainValuesByKey bool
}

func NewWeakKeyMap[K Hashable[K], V any](retainValuesByKey bool) *WeakKeyMap[K, V] {
	return &WeakKeyMap[K, V]{
		values:            newValues(collections.NewHashedMap[*KeyToken[K, V], Slot[V]]),
		retainValuesByKey: retainValuesByKey,
	}
}

func (m *WeakKeyMap[K, V]) RetainsValuesByKey() bool {
	return m.retainValuesByKey
}

// Get returns the value for an equal live key, or nil.
func (m *WeakKeyMap[K, V]) Get(key *K) *V {
	if key == nil {
		return nil
	}
	return m.values.get(NewKeyToken[K, V](key, nil))
}

// Set stores v under key, replacing any entry with an equal live key. A nil v
// removes that entry.
func (m *WeakKeyMap[K, V]) Set(key *K, v *V) {
	if key == nil {
		logger.Debug("ignoring set with nil key")
		return
	}
	if v == nil {
		m.values.set(NewKeyToken[K, V](key, nil), nil)
		return
	}
	var retained *V
	if m.retainValuesByKey {
		retained = v
	}
	m.values.set(NewKeyToken(key, retained), v)
}

// Count returns the number of entries, stale ones included.
func (m *WeakKeyMap[K, V]) Count() int {
	return m.values.count()
}

// Reaped returns a new map with the same mode, holding only the entries whose
// key and value are both alive.
func (m *WeakKeyMap[K, V]) Reaped() *WeakKeyMap[K, V] {
	return &WeakKeyMap[K, V]{
		values: m.values.filtered(func(token *KeyToken[K, V], slot Slot[V]) bool {
			return token.Alive() && slot.Alive()
		}),
		retainValuesByKey: m.retainValuesByKey,
	}
}

// Reap drops every entry whose key or value has been collected, together
// with any value its token retained.
func (m *WeakKeyMap[K, V]) Reap() {
	m.values.replaceWith(m.Reaped().values)
}

// ToStrongMap returns the live pairs in a map that owns keys and values.
func (m *WeakKeyMap[K, V]) ToStrongMap() map[*K]*V {
	out := make(map[*K]*V, m.Count())
	m.values.rangeSlots(func(token *KeyToken[K, V], slot Slot[V]) bool {
		k, v := token.Key(), slot.Value()
		if k != nil && v != nil {
			out[k] = v
		}
		return true
	})
	return out
}

// All yields every entry in storage order. The key, the value, or both are
// nil for stale entries.
func (m *WeakKeyMap[K, V]) All() iter.Seq2[*K, *V] {
	return func(yield func(*K, *V) bool) {
		m.values.rangeSlots(func(token *KeyToken[K, V], slot Slot[V]) bool {
			return yield(token.Key(), slot.Value())
		})
	}
}

// Tokens yields the stored tokens with their slots.
func (m *WeakKeyMap[K, V]) Tokens() iter.Seq2[*KeyToken[K, V], Slot[V]] {
	return func(yield func(*KeyToken[K, V], Slot[V]) bool) {
		m.values.rangeSlots(yield)
	}
}

func (m *WeakKeyMap[K, V]) Cursor() *Cursor[*K, V] {
	tokens := m.values.keys()
	return newCursor(len(tokens), func(i int) (*K, *V, bool) {
		// tokens match themselves by identity, so dead ones are still found
		slot, ok := m.values.lookup(tokens[i])
		return tokens[i].Key(), slot.Value(), ok
	})
}
