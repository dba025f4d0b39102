package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element in order. When fn reports false the element
// is dropped from the output rather than replaced, so the result may be
// shorter than items.
//
//	arr.Map([]string{"1", "x", "3"}, func(s string) (int, bool) {
//	    n, err := strconv.Atoi(s)
//	    return n, err == nil
//	}) // → [1 3]
func Map[T, U any](items []T, fn func(T) (U, bool)) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		if v, ok := fn(item); ok {
			out = append(out, v)
		}
	}
	return out
}

// Select returns the elements for which fn returns true.
func Select[T any](items []T, fn func(T) bool) []T {
	return Filter(items, func(item T, _ int) bool { return fn(item) })
}

// Reject returns the elements for which fn returns false.
// It is the complement of [Select].
func Reject[T any](items []T, fn func(T) bool) []T {
	return Filter(items, func(item T, _ int) bool { return !fn(item) })
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Partition splits items into two slices: those satisfying fn and those that do not.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Each calls fn for every element and returns items unchanged.
func Each[T any](items []T, fn func(T)) []T {
	for _, item := range items {
		fn(item)
	}
	return items
}

// EachWithIndex calls fn(item, index) for every element and returns items
// unchanged.
func EachWithIndex[T any](items []T, fn func(T, int)) []T {
	for i, item := range items {
		fn(item, i)
	}
	return items
}

// Reduce folds items left to right. The memo starts as the first element and
// fn is called for the second element onwards. An empty slice has no seed and
// yields [ErrEmptySequence]; use [Inject] when that case needs a value.
func Reduce[T any](items []T, fn func(memo, item T) T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	memo := items[0]
	for _, item := range items[1:] {
		memo = fn(memo, item)
	}
	return memo, nil
}

// Inject folds items left to right starting from initial.
//
//	byName := arr.Inject(users, map[string]User{}, func(m map[string]User, u User) map[string]User {
//	    m[u.Name] = u
//	    return m
//	})
func Inject[T, U any](items []T, initial U, fn func(memo U, item T) U) U {
	memo := initial
	for _, item := range items {
		memo = fn(memo, item)
	}
	return memo
}

// FlatMap applies fn to each element (producing a []U) and concatenates the results.
func FlatMap[T, U any](items []T, fn func(T) []U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item)...)
	}
	return out
}

// Compact drops nil pointers and dereferences the rest.
func Compact[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Plucking
// ─────────────────────────────────────────────────────────────────────────────

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// PluckPath resolves a dot-separated path against every element. Segments may
// name map keys, exported struct fields or slice indices, and any depth is
// allowed. Elements where the path does not resolve produce nil, so the
// result always has len(items) entries.
//
//	arr.PluckPath(users, "Address.City")
func PluckPath[T any](items []T, path string) []any {
	segments := strings.Split(path, ".")
	out := make([]any, len(items))
	for i, item := range items {
		out[i], _ = Dig(item, segments...)
	}
	return out
}

// PluckAs converts every element to U. Elements that are not a U become the
// zero value of U.
func PluckAs[U any](items []any) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i], _ = item.(U)
	}
	return out
}

// PluckIs reports, per element, whether it holds a value of type U.
func PluckIs[U any](items []any) []bool {
	out := make([]bool, len(items))
	for i, item := range items {
		_, out[i] = item.(U)
	}
	return out
}
