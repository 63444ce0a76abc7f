package weakmap

import "fmt"

// Cursor walks a snapshot of the keys present when it was taken.
// Call Next before every Entry.
type Cursor[K any, V any] struct {
	pos     int
	n       int
	resolve func(i int) (K, *V, bool)
}

func newCursor[K any, V any](n int, resolve func(i int) (K, *V, bool)) *Cursor[K, V] {
	return &Cursor[K, V]{
		pos:     -1,
		n:       n,
		resolve: resolve,
	}
}

func (c *Cursor[K, V]) Next() bool {
	if c.pos < c.n {
		c.pos++
	}
	return c.pos < c.n
}

// Entry returns the key and value under the cursor. The value is nil for a
// stale entry. Entry panics if the cursor is not on an entry, or if the entry
// was removed after the cursor was taken.
func (c *Cursor[K, V]) Entry() (K, *V) {
	if c.pos < 0 || c.pos >= c.n {
		panic(fmt.Sprintf("weakmap: invalid cursor position %d of %d", c.pos, c.n))
	}
	k, v, ok := c.resolve(c.pos)
	if !ok {
		panic(fmt.Sprintf("weakmap: entry at cursor position %d was removed", c.pos))
	}
	return k, v
}
