package weakmap

import "weak"

// Hashable is implemented by key types of a WeakKeyMap. Hash must be
// consistent with Equals.
type Hashable[K any] interface {
	Hash() uint64
	Equals(other K) bool
}

// KeyToken wraps a key that is referenced weakly. The hash is computed once
// so the token stays findable after the key is gone. In retain mode the
// token also owns the value.
type KeyToken[K Hashable[K], V any] struct {
	key      weak.Pointer[K]
	hash     uint64
	retained *V
}

// NewKeyToken builds a token for key. A nil key gives a token that is dead
// from the start and hashes to zero.
func NewKeyToken[K Hashable[K], V any](key *K, retained *V) *KeyToken[K, V] {
	if key == nil {
		return &KeyToken[K, V]{retained: retained}
	}
	return &KeyToken[K, V]{
		key:      weak.Make(key),
		hash:     (*key).Hash(),
		retained: retained,
	}
}

func (t *KeyToken[K, V]) Hash() uint64 {
	return t.hash
}

// Equals reports whether both keys are alive and equal. A dead token is
// unequal to every token, itself included.
func (t *KeyToken[K, V]) Equals(other *KeyToken[K, V]) bool {
	if other == nil {
		return false
	}
	a, b := t.Key(), other.Key()
	if a == nil || b == nil {
		return false
	}
	return (*a).Equals(*b)
}

// Key returns the key, or nil once it has been collected.
func (t *KeyToken[K, V]) Key() *K {
	return t.key.Value()
}

func (t *KeyToken[K, V]) Alive() bool {
	return t.Key() != nil
}

// Retained returns the value owned by the token, if any.
func (t *KeyToken[K, V]) Retained() *V {
	return t.retained
}
