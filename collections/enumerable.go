package collections

// Enumerable is the read-only surface shared by [Collection], [Set] and
// [Mutable].
//
// Accept Enumerable in your own functions when any of the three will do, for
// example as the exclusion list of [WithoutAll].
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice. For a Set the
	// order is unspecified.
	All() []T

	// Count returns the number of items.
	Count() int
}

var (
	_ Enumerable[int] = (*Collection[int])(nil)
	_ Enumerable[int] = (*Set[int])(nil)
	_ Enumerable[int] = (*Mutable[int])(nil)
)
