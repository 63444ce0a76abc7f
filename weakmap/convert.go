package weakmap

// NewWeakValueMapFrom wraps every value of source in its own slot. The
// result does not keep the values alive; nil values are skipped.
func NewWeakValueMapFrom[K comparable, V any](source map[K]*V) *WeakValueMap[K, V] {
	m := NewWeakValueMap[K, V]()
	for k, v := range source {
		m.Set(k, v)
	}
	return m
}

// NewWeakKeyMapFrom builds a WeakKeyMap from a strong map. Entries with a nil
// key or value are skipped.
func NewWeakKeyMapFrom[K Hashable[K], V any](source map[*K]*V, retainValuesByKey bool) *WeakKeyMap[K, V] {
	m := NewWeakKeyMap[K, V](retainValuesByKey)
	for k, v := range source {
		if v == nil {
			continue
		}
		m.Set(k, v)
	}
	return m
}

// WeakKeyMapFromValueMap rebuilds the live entries of a WeakValueMap keyed by
// pointers as a WeakKeyMap.
func WeakKeyMapFromValueMap[K Hashable[K], V any](source *WeakValueMap[*K, V], retainValuesByKey bool) *WeakKeyMap[K, V] {
	return NewWeakKeyMapFrom(source.ToStrongMap(), retainValuesByKey)
}

// WeakValueMapFromKeyMap rebuilds the live entries of a WeakKeyMap as a
// WeakValueMap that holds the keys strongly.
func WeakValueMapFromKeyMap[K Hashable[K], V any](source *WeakKeyMap[K, V]) *WeakValueMap[*K, V] {
	return NewWeakValueMapFrom(source.ToStrongMap())
}
