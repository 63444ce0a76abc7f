package weakmap

import (
	"github.com/tuannh982/weakmap/utils/collections"

	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{"component": "weakmap"})

// values is the weak-value core shared by WeakValueMap and WeakKeyMap.
type values[K any, V any] struct {
	storage    collections.Map[K, Slot[V]]
	newStorage func() collections.Map[K, Slot[V]]
}

func newValues[K any, V any](newStorage func() collections.Map[K, Slot[V]]) *values[K, V] {
	return &values[K, V]{
		storage:    newStorage(),
		newStorage: newStorage,
	}
}

func (m *values[K, V]) get(k K) *V {
	slot, err := m.storage.Get(k)
	if err != nil {
		return nil
	}
	return slot.Value()
}

func (m *values[K, V]) set(k K, v *V) {
	if v == nil {
		_ = m.storage.Delete(k)
		return
	}
	m.storage.Put(k, NewSlot(v))
}

func (m *values[K, V]) count() int {
	return m.storage.Size()
}

// filtered returns a copy holding only the entries accepted by keep.
func (m *values[K, V]) filtered(keep func(k K, slot Slot[V]) bool) *values[K, V] {
	out := newValues(m.newStorage)
	m.storage.Range(func(k K, slot Slot[V]) bool {
		if keep(k, slot) {
			out.storage.Put(k, slot)
		}
		return true
	})
	return out
}

func (m *values[K, V]) replaceWith(other *values[K, V]) {
	before := m.storage.Size()
	m.storage = other.storage
	logger.WithFields(log.Fields{
		"before": before,
		"after":  m.storage.Size(),
	}).Debug("reaped stale entries")
}

func (m *values[K, V]) rangeSlots(f func(k K, slot Slot[V]) bool) {
	m.storage.Range(f)
}

func (m *values[K, V]) keys() []K {
	return m.storage.Keys()
}

func (m *values[K, V]) lookup(k K) (Slot[V], bool) {
	slot, err := m.storage.Get(k)
	return slot, err == nil
}
