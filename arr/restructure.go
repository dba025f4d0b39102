package arr

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// clone copies s into a fresh, never-nil slice.
func clone[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}

// Slice returns a copy of a window of items.
//
// A negative start counts from the end, so -1 is the last element. A
// non-negative length is an element count. A negative length is instead an
// inclusive end position, also counted from the end:
//
//	s := []int{1, 2, 3, 4, 5}
//	arr.Slice(s, 1, 3)   // → [2 3 4]
//	arr.Slice(s, 1, -1)  // → [2 3 4 5]  (index 1 through the last element)
//	arr.Slice(s, -2, 10) // → [4 5]
//
// Out-of-range arguments clamp to the bounds of items.
func Slice[T any](items []T, start, length int) []T {
	n := len(items)
	if start < 0 {
		start = max(n+start, 0)
	}
	if start >= n {
		return []T{}
	}
	var end int
	switch {
	case length < 0:
		end = n + length + 1
	case length > n-start:
		end = n
	default:
		end = start + length
	}
	if end <= start {
		return []T{}
	}
	return clone(items[start:end])
}

// FirstN returns the first n elements. n larger than len(items) returns a copy
// of everything; n <= 0 returns an empty slice.
func FirstN[T any](items []T, n int) []T {
	n = max(min(n, len(items)), 0)
	return clone(items[:n])
}

// LastN returns the last n elements, clamped like [FirstN].
func LastN[T any](items []T, n int) []T {
	n = max(min(n, len(items)), 0)
	return clone(items[len(items)-n:])
}

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunks = append(chunks, clone(items[i:end]))
	}
	return chunks
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Concat returns a new slice holding items followed by every slice in others.
func Concat[T any](items []T, others ...[]T) []T {
	total := len(items)
	for _, o := range others {
		total += len(o)
	}
	out := make([]T, 0, total)
	out = append(out, items...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// Collapse flattens a slice of slices into a single flat slice (one level).
func Collapse[T any](items [][]T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return Concat(items[0], items[1:]...)
}

// Flatten recursively expands nested slices and arrays of any element type
// into one flat []any, depth first. Strings and []byte are kept whole.
//
//	arr.Flatten([]any{1, []any{2, []int{3, 4}}, 5}) // → [1 2 3 4 5]
func Flatten(items []any) []any {
	out := make([]any, 0, len(items))
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
		case []byte, string, nil:
			out = append(out, val)
		default:
			rv := reflect.ValueOf(val)
			if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
				out = append(out, val)
				return
			}
			for i := 0; i < rv.Len(); i++ {
				flatten(rv.Index(i).Interface())
			}
		}
	}
	for _, item := range items {
		flatten(item)
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	out := clone(items)
	slices.Reverse(out)
	return out
}

// Rotate returns a copy of items that starts at index count and wraps around.
// A negative count addresses from the end, so Rotate(s, -1) moves the last
// element to the front. count is taken modulo len(items).
//
//	arr.Rotate([]int{1, 2, 3, 4}, 1)  // → [2 3 4 1]
//	arr.Rotate([]int{1, 2, 3, 4}, -1) // → [4 1 2 3]
func Rotate[T any](items []T, count int) []T {
	n := len(items)
	if n == 0 {
		return []T{}
	}
	k := ((count % n) + n) % n
	out := make([]T, 0, n)
	out = append(out, items[k:]...)
	return append(out, items[:k]...)
}

// Transpose swaps the rows and columns of a rectangular matrix.
// Rows of unequal length yield [ErrRaggedInput].
func Transpose[T any](rows [][]T) ([][]T, error) {
	if len(rows) == 0 {
		return [][]T{}, nil
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedInput, i, len(row), width)
		}
	}
	out := make([][]T, width)
	for c := range out {
		out[c] = make([]T, len(rows))
		for r, row := range rows {
			out[c][r] = row[c]
		}
	}
	return out, nil
}

// Join concatenates the fmt.Sprint form of every element. An optional sep
// is placed between elements.
func Join[T any](items []T, sep ...string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 && len(sep) > 0 {
			b.WriteString(sep[0])
		}
		fmt.Fprint(&b, item)
	}
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Combine creates a map from equal-length key and value slices.
// Returns [ErrMismatchedLengths] if lengths differ.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// GroupBy groups items by a comparable key K extracted by fn. Each group
// keeps the relative order of its elements.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// KeyBy creates a map[K]T from items keyed by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}
