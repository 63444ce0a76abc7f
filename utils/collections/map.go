package collections

// Map is the storage used by the weak containers. Put always overwrites.
type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V)
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	// Range calls f for every entry until f returns false.
	Range(f func(k K, v V) bool)
}
