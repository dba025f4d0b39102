// Package arr provides standalone combinators over plain Go slices, maps,
// integers and strings: map, select, reduce, group, sort, slice, rotate and
// friends, without a wrapper type.
//
// # Slices
//
//	evens  := arr.Select([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	parsed := arr.Map([]string{"1", "x", "3"}, func(s string) (int, bool) {
//	    n, err := strconv.Atoi(s)
//	    return n, err == nil
//	}) // → [1 3]
//	tail   := arr.Slice([]int{1, 2, 3, 4, 5}, 1, -1) // → [2 3 4 5]
//
// Every helper returns a freshly allocated result and leaves its input
// untouched; the only mutating function in the package is [Set].
//
// # Absence
//
// Nothing in this package panics or errors because a lookup came up empty.
// Transform callbacks signal "omit this element" by returning false as their
// second result; searches return (zero, false) or [NotFound]; indices and
// counts clamp or wrap to the input bounds. The two exceptions are [Reduce]
// on an empty slice ([ErrEmptySequence]) and [Transpose] on ragged rows
// ([ErrRaggedInput]).
//
// # Maps
//
//	arr.Extend(defaults, overrides)          // last write wins
//	arr.Get(cfg, "db.primary.host")          // nil when any segment is missing
//	arr.PluckPath(orders, "Customer.Email")  // struct fields, map keys, indices
//
// # Concurrency
//
// [PMap] is the only function that runs callbacks concurrently. All other
// helpers run on the calling goroutine and hold no shared state, so they may
// be called from many goroutines at once on independent inputs.
//
// # Randomness
//
// [Shuffle], [Sample] and [Random] take an [Intn] source. Pass nil for the
// process-wide source or [NewRand] for reproducible results.
package arr
