// Package collections wraps the free functions of package arr in fluent,
// chainable container types.
//
// # Overview
//
// Four containers are provided:
//
//   - [Collection][T] is an ordered, immutable sequence.
//   - [Mutable][T] is an ordered sequence with in-place Push, Pop, Shift and Unshift.
//   - [Set][T] is an unordered set of distinct comparable items.
//   - [Dict][K, V] is an immutable map with merge-style updates.
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Select(func(n int) bool { return n%2 == 0 }).
//	    SortByDesc(func(n int) any { return n }).
//	    FirstN(3).
//	    Implode(", ", strconv.Itoa) // → "10, 8, 6"
//
// # Immutability
//
// Collection, Set and Dict never change after construction: every
// transformation returns a new value. They may be shared between goroutines
// without locking. Mutable is the exception and must not be shared; convert
// between the two with [Collection.Mutable] and [Mutable.Freeze].
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type, or that need comparable or
// ordered elements, are package-level functions:
//
//	// Method-based (returns Collection[any]):
//	c.Map(func(n int) (any, bool) { return n * 2, true })
//
//	// Package-level (returns Collection[string], fully typed):
//	collections.Map(c, func(n int) (string, bool) { return strconv.Itoa(n), true })
//
// Package-level functions: [Map], [PMap], [FlatMap], [Inject], [Pluck],
// [PluckAs], [GroupBy], [IndexOf], [Uniq], [Without], [WithoutAll], [ToSet],
// [Sort], [SortBy], [SortNatural], [Collapse], [Flatten], [Transpose],
// [Upto], [Split].
//
// # Absence
//
// Lookups that may find nothing return (T, bool) or [arr.NotFound]; they do
// not return errors. Errors are reserved for inputs an operation cannot
// process, such as [ErrRaggedInput] from [Transpose].
package collections
