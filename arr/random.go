package arr

import "golang.org/x/exp/rand"

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Intn is the random source used by [Shuffle], [Sample] and [Random].
// Both *rand.Rand from golang.org/x/exp/rand and from math/rand satisfy it.
//
// Passing nil selects the process-wide source, which is safe for concurrent
// use. Sources built with [NewRand] are not.
type Intn interface {
	// Intn returns a uniform value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// NewRand returns a deterministic source seeded with seed. Two sources built
// from the same seed produce the same shuffles.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func source(rng Intn) Intn {
	if rng == nil {
		return globalSource{}
	}
	return rng
}

// Shuffle returns a uniformly shuffled copy of items (Fisher–Yates).
func Shuffle[T any](items []T, rng Intn) []T {
	rng = source(rng)
	out := clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns one uniformly chosen element.
// Returns the zero value and false when items is empty.
func Sample[T any](items []T, rng Intn) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[source(rng).Intn(len(items))], true
}

// Random returns n randomly selected items (without replacement).
// If n >= len(items), a shuffled copy of all items is returned.
func Random[T any](items []T, n int, rng Intn) []T {
	return FirstN(Shuffle(items, rng), n)
}
