package collections

import "github.com/benbjohnson/immutable"

// HashKey is a key whose hash and equality are supplied by the key itself
// rather than by the Go map. Two keys that are the same value always match,
// even when Equals reports false for them.
type HashKey[K any] interface {
	comparable
	Hash() uint64
	Equals(other K) bool
}

type keyHasher[K HashKey[K]] struct{}

func (keyHasher[K]) Hash(k K) uint32 {
	h := k.Hash()
	return uint32(h ^ h>>32)
}

func (keyHasher[K]) Equal(a, b K) bool {
	return a == b || a.Equals(b)
}

// hashedMap swaps in a new immutable root on every write, so a Range in
// progress keeps iterating the version it started with.
type hashedMap[K HashKey[K], V any] struct {
	entries *immutable.Map[K, V]
}

func NewHashedMap[K HashKey[K], V any]() Map[K, V] {
	return &hashedMap[K, V]{
		entries: immutable.NewMap[K, V](keyHasher[K]{}),
	}
}

func (m *hashedMap[K, V]) Contains(k K) bool {
	_, ok := m.entries.Get(k)
	return ok
}

func (m *hashedMap[K, V]) Put(k K, v V) {
	m.entries = m.entries.Set(k, v)
}

func (m *hashedMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries.Get(k)
	if !ok {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *hashedMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	m.entries = m.entries.Delete(k)
	return nil
}

func (m *hashedMap[K, V]) Size() int {
	return m.entries.Len()
}

func (m *hashedMap[K, V]) Keys() []K {
	arr := make([]K, 0, m.Size())
	m.Range(func(k K, _ V) bool {
		arr = append(arr, k)
		return true
	})
	return arr
}

func (m *hashedMap[K, V]) Range(f func(k K, v V) bool) {
	itr := m.entries.Iterator()
	for !itr.Done() {
		k, v, _ := itr.Next()
		if !f(k, v) {
			return
		}
	}
}
