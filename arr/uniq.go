package arr

// ─────────────────────────────────────────────────────────────────────────────
// Set-like operations on slices
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice with duplicates removed, keeping each value at the
// position of its first occurrence.
//
//	arr.Uniq([]int{3, 1, 3, 2, 1}) // → [3 1 2]
func Uniq[T comparable](items []T) []T {
	return UniqBy(items, func(item T) T { return item })
}

// UniqBy returns elements with duplicates removed using a key function.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqAny is [Uniq] for heterogeneous slices. Elements are compared with
// [EqualKey], so slices and maps are deduplicated by content.
func UniqAny(items []any) []any {
	return UniqBy(items, EqualKey)
}

// Without returns the elements of items not equal to any of exclude.
func Without[T comparable](items []T, exclude ...T) []T {
	drop := make(map[T]struct{}, len(exclude))
	for _, item := range exclude {
		drop[item] = struct{}{}
	}
	return Filter(items, func(item T, _ int) bool {
		_, found := drop[item]
		return !found
	})
}

// WithoutAny is [Without] for heterogeneous slices, comparing by [EqualKey].
func WithoutAny(items []any, exclude ...any) []any {
	drop := make(map[any]struct{}, len(exclude))
	for _, item := range exclude {
		drop[EqualKey(item)] = struct{}{}
	}
	return Filter(items, func(item any, _ int) bool {
		_, found := drop[EqualKey(item)]
		return !found
	})
}

// Intersect returns elements of a that also appear in b (requires comparable T).
func Intersect[T comparable](a, b []T) []T {
	keep := make(map[T]struct{}, len(b))
	for _, item := range b {
		keep[item] = struct{}{}
	}
	return Filter(a, func(item T, _ int) bool {
		_, found := keep[item]
		return found
	})
}
