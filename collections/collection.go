package collections

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/hasbyte1/go-yolo/arr"
)

// Collection is a generic, immutable wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged. Multiple goroutines may therefore read and
// transform the same collection concurrently. The only container in this
// package that changes in place is [Mutable].
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	result := collections.New(5, 1, 4, 2, 3, 6).
//	    Select(func(n int) bool { return n%2 == 0 }).
//	    SortBy(func(n int) any { return n }).
//	    FirstN(2) // → [2 4]
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type, or that need comparable or
// ordered elements, are package-level functions:
//
//	lengths := collections.Map(words, func(s string) (int, bool) { return len(s), s != "" })
//	unique  := collections.Uniq(ints)
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	return wrap(arr.Concat(items))
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// wrap adopts items without copying. Callers must own items exclusively.
func wrap[T any](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T { return arr.Concat(c.items) }

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return arr.Empty(c.items) }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return !c.IsEmpty() }

// Get returns the item at index together with a presence flag. A negative
// index counts from the end, so Get(-1) is the last item.
// Returns the zero value and false when index is out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	if index < 0 {
		index += len(c.items)
	}
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[index], true
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Join concatenates the fmt.Sprint form of every item, separated by sep[0]
// when given. See [arr.Join].
func (c *Collection[T]) Join(sep ...string) string { return arr.Join(c.items, sep...) }

// Implode joins all items into a string using sep, converting each item with fn.
func (c *Collection[T]) Implode(sep string, fn func(T) string) string {
	return strings.Join(arr.Pluck(c.items, fn), sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every item in order and returns c unchanged, so it can
// sit in the middle of a chain.
func (c *Collection[T]) Each(fn func(T)) *Collection[T] {
	arr.Each(c.items, fn)
	return c
}

// EachWithIndex calls fn(item, index) for every item and returns c unchanged.
func (c *Collection[T]) EachWithIndex(fn func(T, int)) *Collection[T] {
	arr.EachWithIndex(c.items, fn)
	return c
}

// Tap calls fn(c) for side-effects (e.g. debugging) and returns c unchanged
// for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) { return arr.First(c.items, fns...) }

// Last returns the last item, optionally matching fns[0].
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) { return arr.Last(c.items, fns...) }

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := c.Find(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Find returns the first item satisfying fn, stopping at the first match.
func (c *Collection[T]) Find(fn func(T) bool) (T, bool) { return arr.Find(c.items, fn) }

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool { return arr.Contains(c.items, fn) }

// Search returns the index of the first item for which fn returns true, or
// [arr.NotFound].
func (c *Collection[T]) Search(fn func(T) bool) int { return arr.Search(c.items, fn) }

// Min returns the item with the lowest score; ties go to the earliest item.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Min(score func(T) int) (T, bool) { return arr.Min(c.items, score) }

// Max returns the item with the highest score; ties go to the earliest item.
func (c *Collection[T]) Max(score func(T) int) (T, bool) { return arr.Max(c.items, score) }

// Sample returns one random item from the process-wide source.
// Returns the zero value and false if the collection is empty.
func (c *Collection[T]) Sample() (T, bool) { return arr.Sample(c.items, nil) }

// SampleWith is [Collection.Sample] with an explicit random source.
func (c *Collection[T]) SampleWith(rng arr.Intn) (T, bool) { return arr.Sample(c.items, rng) }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Select returns a new collection with only the items for which fn returns true.
func (c *Collection[T]) Select(fn func(T) bool) *Collection[T] { return wrap(arr.Select(c.items, fn)) }

// Reject returns a new collection with items for which fn returns true removed.
// It is the complement of [Collection.Select].
func (c *Collection[T]) Reject(fn func(T) bool) *Collection[T] { return wrap(arr.Reject(c.items, fn)) }

// Filter is the index-aware form of [Collection.Select].
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return wrap(arr.Filter(c.items, fn))
}

// Partition splits the collection into two: the first contains items for
// which fn returns true, the second the rest.
func (c *Collection[T]) Partition(fn func(T) bool) (*Collection[T], *Collection[T]) {
	pass, fail := arr.Partition(c.items, fn)
	return wrap(pass), wrap(fail)
}

// Map returns a new Collection[any] with each item transformed by fn. Items
// for which fn reports false are left out.
//
// For type-safe transformation to a concrete type U, use the package-level
// [Map] function instead.
func (c *Collection[T]) Map(fn func(T) (any, bool)) *Collection[any] { return Map(c, fn) }

// Pluck resolves a dot-separated path against every item; see [arr.PluckPath].
// The result always has Count() items, with nil where the path is missing.
func (c *Collection[T]) Pluck(path string) *Collection[any] { return wrap(arr.PluckPath(c.items, path)) }

// Reduce folds the collection, seeding the memo with the first item.
// Returns [ErrEmptyCollection] when there is no first item.
//
// For reductions that change the type or need an explicit seed, use
// [Collection.Inject] or the package-level [Inject].
func (c *Collection[T]) Reduce(fn func(memo, item T) T) (T, error) { return arr.Reduce(c.items, fn) }

// Inject folds the collection starting from initial.
func (c *Collection[T]) Inject(initial T, fn func(memo, item T) T) T {
	return arr.Inject(c.items, initial, fn)
}

// Uniq returns a new collection with duplicates removed, keeping first
// occurrences in place. key extracts the comparison key; pass nil to compare
// whole items by [arr.EqualKey], which also handles slices and maps.
func (c *Collection[T]) Uniq(key func(T) any) *Collection[T] {
	if key == nil {
		key = func(item T) any { return arr.EqualKey(item) }
	}
	return wrap(arr.UniqBy(c.items, key))
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] { return wrap(arr.Reverse(c.items)) }

// Rotate returns a new collection starting at item count and wrapping
// around; negative counts address from the end. See [arr.Rotate].
func (c *Collection[T]) Rotate(count int) *Collection[T] { return wrap(arr.Rotate(c.items, count)) }

// SortFunc returns a new, stably sorted collection ordered by compare.
func (c *Collection[T]) SortFunc(compare func(a, b T) int) *Collection[T] {
	return wrap(arr.SortFunc(c.items, compare))
}

// SortBy returns a new collection stably sorted ascending by the key fn
// extracts. Keys are ordered as in [arr.SortByAny]: numbers before strings
// before booleans, with integers compared exactly. For a statically typed key
// use the package-level [SortBy].
func (c *Collection[T]) SortBy(fn func(T) any) *Collection[T] { return wrap(arr.SortByAny(c.items, fn)) }

// SortByDesc returns a new collection stably sorted descending by fn.
func (c *Collection[T]) SortByDesc(fn func(T) any) *Collection[T] {
	return wrap(arr.SortByAnyDesc(c.items, fn))
}

// SortByField returns a new collection stably sorted by a single field or map
// key. A dotted field yields [ErrMultiLevelPath]; see [arr.SortByField].
func (c *Collection[T]) SortByField(field string) (*Collection[T], error) {
	sorted, err := arr.SortByField(c.items, field)
	if err != nil {
		return nil, err
	}
	return wrap(sorted), nil
}

// Shuffle returns a new collection in random order, drawn from the
// process-wide source.
func (c *Collection[T]) Shuffle() *Collection[T] { return c.ShuffleWith(nil) }

// ShuffleWith is [Collection.Shuffle] with an explicit random source.
func (c *Collection[T]) ShuffleWith(rng arr.Intn) *Collection[T] {
	return wrap(arr.Shuffle(c.items, rng))
}

// Random returns a new collection with n randomly selected items (without
// replacement). If n >= Count(), a shuffled copy of the full collection is
// returned.
func (c *Collection[T]) Random(n int) *Collection[T] { return wrap(arr.Random(c.items, n, nil)) }

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove (copy-on-write)
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a new collection with items added at the end.
// To grow a collection in place, use [Collection.Mutable].
func (c *Collection[T]) Append(items ...T) *Collection[T] { return wrap(arr.Concat(c.items, items)) }

// Prepend returns a new collection with items inserted at the front.
func (c *Collection[T]) Prepend(items ...T) *Collection[T] { return wrap(arr.Concat(items, c.items)) }

// Concat returns a new collection with all items from other appended.
func (c *Collection[T]) Concat(other Enumerable[T]) *Collection[T] {
	return wrap(arr.Concat(c.items, other.All()))
}

// Mutable copies the collection into a new [Mutable], the only container in
// this package whose methods change it in place.
func (c *Collection[T]) Mutable() *Mutable[T] { return NewMutable(c.items...) }

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// FirstN returns at most n items from the start.
func (c *Collection[T]) FirstN(n int) *Collection[T] { return wrap(arr.FirstN(c.items, n)) }

// LastN returns at most n items from the end.
func (c *Collection[T]) LastN(n int) *Collection[T] { return wrap(arr.LastN(c.items, n)) }

// Slice returns a window of the collection. A negative start counts from the
// end; a negative length is an inclusive end position rather than a count.
// See [arr.Slice].
func (c *Collection[T]) Slice(start, length int) *Collection[T] {
	return wrap(arr.Slice(c.items, start, length))
}

// Chunk splits the collection into consecutive groups of size, returning a
// plain [][]T. The last group may contain fewer than size items.
// Returns an empty [][]T if size <= 0 or the collection is empty.
func (c *Collection[T]) Chunk(size int) [][]T { return arr.Chunk(c.items, size) }

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by the key returned by fn. Each group keeps the
// relative order of its items; the map has no defined order.
// Returns map[any]*Collection[T]. For typed keys use the package-level [GroupBy].
func (c *Collection[T]) GroupBy(fn func(T) any) map[any]*Collection[T] {
	return GroupBy(c, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection[T]) WhenEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsEmpty(), fn)
}
