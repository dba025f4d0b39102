package arr

import "errors"

// Sentinel errors returned by arr helpers.
//
// Use [errors.Is] for comparisons:
//
//	_, err := arr.Reduce(items, fn)
//	if errors.Is(err, arr.ErrEmptySequence) {
//	    // no seed value; use Inject instead
//	}
var (
	// ErrEmptySequence is returned by [Reduce] when there is no first element
	// to seed the memo with.
	ErrEmptySequence = errors.New("arr: reduce of empty sequence with no initial memo")

	// ErrRaggedInput is returned by [Transpose] when the inner slices do not
	// all have the same length.
	ErrRaggedInput = errors.New("arr: rows have unequal lengths")

	// ErrMultiLevelPath is returned by [SortByField] when the field reference
	// contains more than one path segment.
	ErrMultiLevelPath = errors.New("arr: sort field must be a single path segment")

	// ErrOddKeyValues is returned by [ExtendKV] when the flat key/value list
	// has an odd number of entries.
	ErrOddKeyValues = errors.New("arr: key/value list must have an even length")

	// ErrNonStringKey is returned by [ExtendKV] when a key position holds a
	// value that is not a string.
	ErrNonStringKey = errors.New("arr: keys must be strings")

	// ErrMismatchedLengths is returned by [Combine] when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("arr: keys and values must have the same length")
)
