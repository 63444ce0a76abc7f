package weakmap

import (
	"hash/fnv"
	"runtime"
)

// sock carries a string so it is never placed in a shared tiny allocation
// block, which would keep weak pointers to it from being cleared.
type sock struct {
	name string
}

func newSock(name string) *sock {
	return &sock{name: name}
}

type exampleKey struct {
	name string
}

func newKey(name string) *exampleKey {
	return &exampleKey{name: name}
}

func (k exampleKey) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(k.name))
	return h.Sum64()
}

func (k exampleKey) Equals(other exampleKey) bool {
	return k.name == other.name
}

func collect() {
	runtime.GC()
	runtime.GC()
}
