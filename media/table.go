package media

import (
	"github.com/kamstrup/intmap"
)

// Table maps an input symbol to a loaded image, falling back to a default image for unbound symbols.
//
// A table is filled once while loading and only read afterward.
type Table[K intmap.IntKey, V comparable] struct {
	images  *intmap.Map[K, V]
	def     V
	release func(V)
	closed  bool
}

// NewTable creates a table whose unbound symbols resolve to def. When release is non-nil, Close
// hands it every distinct image the table holds.
func NewTable[K intmap.IntKey, V comparable](def V, release func(V)) *Table[K, V] {
	return &Table[K, V]{
		images:  intmap.New[K, V](8),
		def:     def,
		release: release,
	}
}

// Put binds an image to a symbol. Binding into a closed table panics, since its images were already
// released.
func (t *Table[K, V]) Put(symbol K, image V) {
	if t.closed {
		panic("media: Put on closed table")
	}
	t.images.Put(symbol, image)
}

// Get returns the image bound to symbol, or the default image.
func (t *Table[K, V]) Get(symbol K) V {
	if image, ok := t.images.Get(symbol); ok {
		return image
	}
	return t.def
}

// Has reports whether symbol has its own image.
func (t *Table[K, V]) Has(symbol K) bool {
	_, ok := t.images.Get(symbol)
	return ok
}

func (t *Table[K, V]) Default() V {
	return t.def
}

// Len is the number of bound symbols, not counting the default.
func (t *Table[K, V]) Len() int {
	return t.images.Len()
}

// Close releases every distinct image once. Calling it again does nothing.
func (t *Table[K, V]) Close() {
	if t.closed {
		return
	}
	t.closed = true
	if t.release == nil {
		return
	}

	released := make(map[V]struct{}, t.images.Len()+1)
	free := func(image V) {
		if _, ok := released[image]; ok {
			return
		}
		released[image] = struct{}{}
		t.release(image)
	}

	free(t.def)
	t.images.ForEach(func(_ K, image V) bool {
		free(image)
		return true
	})
	t.images.Clear()
}
