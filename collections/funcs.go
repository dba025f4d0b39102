package collections

import (
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-yolo/arr"
)

// This file contains package-level generic functions for operations that
// change the element type of a Collection, or that need comparable or
// ordered elements.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	result := collections.Map(
//	    collections.New(1, 2, 3, 4, 5).Select(func(n int) bool { return n%2 == 0 }),
//	    func(n int) (string, bool) { return strconv.Itoa(n), true },
//	)

// Map applies fn to every item and returns a new Collection[U]. Items for
// which fn reports false are omitted, so the result may be shorter than c.
//
//	ids := collections.Map(rows, func(r Row) (int, bool) { return r.ID, r.ID != 0 })
func Map[T, U any](c *Collection[T], fn func(T) (U, bool)) *Collection[U] {
	return wrap(arr.Map(c.items, fn))
}

// PMap is [Map] with fn called concurrently; the result order still follows
// c. fn must be safe for concurrent use. See [arr.PMap] for the options and
// the caveats on small inputs.
func PMap[T, U any](c *Collection[T], fn func(T) (U, bool), opts ...arr.ParallelOption) *Collection[U] {
	return wrap(arr.PMap(c.items, fn, opts...))
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single Collection[U].
//
//	words := collections.FlatMap(collections.New("hello world", "foo bar"), strings.Fields)
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Collection[T], fn func(T) []U) *Collection[U] {
	return wrap(arr.FlatMap(c.items, fn))
}

// Inject folds Collection[T] into a single value of type U, starting from
// initial. An empty collection returns initial.
//
//	total := collections.Inject(orders, 0.0, func(sum float64, o Order) float64 { return sum + o.Total })
func Inject[T, U any](c *Collection[T], initial U, fn func(memo U, item T) U) U {
	return arr.Inject(c.items, initial, fn)
}

// Pluck extracts a single field U from every item T and returns a new
// Collection[U].
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return wrap(arr.Pluck(c.items, fn))
}

// PluckAs converts every item of a heterogeneous collection to U, using the
// zero value for items that are not a U. The result has c.Count() items.
func PluckAs[U any](c *Collection[any]) *Collection[U] {
	return wrap(arr.PluckAs[U](c.items))
}

// GroupBy groups items by the comparable key K extracted by fn.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]*Collection[T] {
	groups := make(map[K]*Collection[T])
	for k, items := range arr.GroupBy(c.items, fn) {
		groups[k] = wrap(items)
	}
	return groups
}

// IndexOf returns the position of the first item equal to value, or
// [arr.NotFound].
func IndexOf[T comparable](c *Collection[T], value T) int {
	return arr.IndexOf(c.items, value)
}

// Uniq removes duplicate items, keeping first occurrences in place.
//
//	collections.Uniq(collections.New(3, 1, 3, 2, 1)) // → [3 1 2]
func Uniq[T comparable](c *Collection[T]) *Collection[T] {
	return wrap(arr.Uniq(c.items))
}

// Without returns the items of c not equal to any of items.
func Without[T comparable](c *Collection[T], items ...T) *Collection[T] {
	return wrap(arr.Without(c.items, items...))
}

// WithoutAll returns the items of c that do not occur in other, which may be
// a *Collection, a *Set or a *Mutable.
func WithoutAll[T comparable](c *Collection[T], other Enumerable[T]) *Collection[T] {
	return Without(c, other.All()...)
}

// ToSet collects the distinct items of c into a [Set]. Order is lost.
func ToSet[T comparable](c *Collection[T]) *Set[T] {
	return SetFrom(c.items)
}

// Sort returns a new collection in ascending order. Equal items keep their
// relative order.
func Sort[T constraints.Ordered](c *Collection[T]) *Collection[T] {
	return wrap(arr.Sort(c.items))
}

// SortBy returns a new collection stably sorted ascending by the key fn
// extracts. Unlike [Collection.SortBy] the key may be any ordered type.
func SortBy[T any, K constraints.Ordered](c *Collection[T], fn func(T) K) *Collection[T] {
	return wrap(arr.SortBy(c.items, fn))
}

// SortNatural returns a new collection of strings in natural order
// ("v2" before "v10").
func SortNatural(c *Collection[string]) *Collection[string] {
	return wrap(arr.SortNatural(c.items))
}

// Collapse flattens a Collection[[]T] into a Collection[T] (one level only).
//
//	flat := collections.Collapse(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	return wrap(arr.Collapse(c.items))
}

// Flatten recursively flattens a Collection[any] that may contain nested
// slices, arrays or *Collection[any] values of arbitrary depth.
//
// The result type is Collection[any]; use type assertions on individual
// elements as needed.
func Flatten(c *Collection[any]) *Collection[any] {
	items := make([]any, len(c.items))
	for i, item := range c.items {
		items[i] = unwrapNested(item)
	}
	return wrap(arr.Flatten(items))
}

func unwrapNested(v any) any {
	switch val := v.(type) {
	case *Collection[any]:
		out := make([]any, len(val.items))
		for i, item := range val.items {
			out[i] = unwrapNested(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = unwrapNested(item)
		}
		return out
	default:
		return v
	}
}

// Transpose swaps rows and columns. Ragged rows yield [ErrRaggedInput].
func Transpose[T any](c *Collection[[]T]) (*Collection[[]T], error) {
	rows, err := arr.Transpose(c.items)
	if err != nil {
		return nil, err
	}
	return wrap(rows), nil
}

// Upto returns the inclusive integer range [n, limit] as a collection,
// calling fn (when non-nil) for each value. Empty when limit < n.
func Upto[I constraints.Integer](n, limit I, fn func(I)) *Collection[I] {
	return wrap(arr.Upto(n, limit, fn))
}

// Split breaks text around delim, keeping empty segments.
func Split(text, delim string) *Collection[string] {
	return wrap(arr.Split(text, delim))
}
