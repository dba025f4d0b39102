package collections

import "github.com/hasbyte1/go-yolo/arr"

// Mutable is a sequence that is changed IN PLACE by Push, Pop, Shift and
// Unshift. It is the only container in this package whose methods modify the
// receiver; everything reachable from [Collection] is copy-on-write.
//
// Keeping these operations on a separate type means an immutable Collection
// can never be grown or shrunk behind the back of code that is reading it.
// Convert with [Collection.Mutable] and [Mutable.Freeze], both of which copy.
//
// A Mutable is not safe for concurrent use.
//
//	stack := collections.NewMutable[int]()
//	stack.Push(1).Push(2)
//	top, _ := stack.Pop() // 2; stack now holds [1]
type Mutable[T any] struct {
	items []T
}

// NewMutable creates a Mutable holding a copy of items.
func NewMutable[T any](items ...T) *Mutable[T] {
	return &Mutable[T]{items: arr.Concat(items)}
}

// Push appends items to the end of m, in place, and returns m for chaining.
func (m *Mutable[T]) Push(items ...T) *Mutable[T] {
	m.items = append(m.items, items...)
	return m
}

// Pop removes the last item from m, in place, and returns it.
// Returns the zero value and false when m is empty.
func (m *Mutable[T]) Pop() (T, bool) {
	var zero T
	n := len(m.items)
	if n == 0 {
		return zero, false
	}
	item := m.items[n-1]
	m.items[n-1] = zero
	m.items = m.items[:n-1]
	return item, true
}

// Unshift inserts items at the front of m, in place, and returns m for
// chaining. The items keep their argument order: Unshift(1, 2) on [3] gives
// [1 2 3].
func (m *Mutable[T]) Unshift(items ...T) *Mutable[T] {
	m.items = arr.Concat(items, m.items)
	return m
}

// Shift removes the first item from m, in place, and returns it.
// Returns the zero value and false when m is empty.
func (m *Mutable[T]) Shift() (T, bool) {
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	item := m.items[0]
	m.items[0] = zero
	m.items = m.items[1:]
	return item, true
}

// Count returns the number of items.
func (m *Mutable[T]) Count() int { return len(m.items) }

// IsEmpty reports whether m holds no items.
func (m *Mutable[T]) IsEmpty() bool { return len(m.items) == 0 }

// All returns a copy of the current items.
func (m *Mutable[T]) All() []T { return arr.Concat(m.items) }

// Freeze returns an immutable [Collection] holding a copy of the current
// items. Later changes to m do not affect it.
func (m *Mutable[T]) Freeze() *Collection[T] { return From(m.items) }
