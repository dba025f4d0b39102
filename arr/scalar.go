package arr

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// maxUptoHint caps the preallocation so huge ranges grow on demand instead.
const maxUptoHint = 1 << 16

// Upto returns the inclusive range [n, limit], calling fn (when non-nil) with
// each value in ascending order. The range is empty when limit < n.
//
//	arr.Upto(3, 5, nil) // → [3 4 5]
func Upto[I constraints.Integer](n, limit I, fn func(I)) []I {
	if limit < n {
		return []I{}
	}
	// limit-n can overflow I, but the uint64 difference wraps back into
	// range for any same-width integer type.
	width := uint64(limit) - uint64(n)
	out := make([]I, 0, int(min(width, maxUptoHint))+1)
	for i := n; ; i++ {
		if fn != nil {
			fn(i)
		}
		out = append(out, i)
		if i == limit {
			break
		}
	}
	return out
}

// Split breaks text around every occurrence of delim. Empty leading, trailing
// and inner segments are kept. An empty delim returns text as the only
// segment.
//
//	arr.Split(",a,,b,", ",") // → ["" "a" "" "b" ""]
func Split(text, delim string) []string {
	if delim == "" {
		return []string{text}
	}
	return strings.Split(text, delim)
}
