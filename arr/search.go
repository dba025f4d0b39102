package arr

import "golang.org/x/exp/constraints"

// NotFound is the index reported by [IndexOf], [IndexOfAny] and [Search]
// when nothing matches.
const NotFound = -1

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Empty reports whether items has no elements.
func Empty[T any](items []T) bool { return len(items) == 0 }

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		return Find(items, fns[0])
	}
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Find returns the first element satisfying fn. It stops at the first match.
func Find[T any](items []T, fn func(T) bool) (T, bool) {
	for _, item := range items {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	return Search(items, fn) != NotFound
}

// ContainsValue reports whether items contains value (requires comparable T).
func ContainsValue[T comparable](items []T, value T) bool {
	return IndexOf(items, value) != NotFound
}

// IndexOf returns the index of the first occurrence of value, or [NotFound].
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return NotFound
}

// IndexOfAny is [IndexOf] for heterogeneous slices. Elements are compared
// by [EqualKey], so slices and maps can be located too.
func IndexOfAny(items []any, value any) int {
	want := EqualKey(value)
	for i, item := range items {
		if EqualKey(item) == want {
			return i
		}
	}
	return NotFound
}

// Search returns the index of the first element satisfying fn, or [NotFound].
func Search[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return NotFound
}

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the element whose score is the smallest. On ties the earliest
// element wins. Returns the zero value and false if items is empty.
func Min[T any, S constraints.Ordered](items []T, score func(T) S) (T, bool) {
	return extreme(items, score, func(a, b S) bool { return a < b })
}

// Max returns the element whose score is the largest. On ties the earliest
// element wins. Returns the zero value and false if items is empty.
func Max[T any, S constraints.Ordered](items []T, score func(T) S) (T, bool) {
	return extreme(items, score, func(a, b S) bool { return a > b })
}

func extreme[T any, S constraints.Ordered](items []T, score func(T) S, better func(a, b S) bool) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best, bestScore := items[0], score(items[0])
	for _, item := range items[1:] {
		if s := score(item); better(s, bestScore) {
			best, bestScore = item, s
		}
	}
	return best, true
}
