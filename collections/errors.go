package collections

import (
	"errors"

	"github.com/hasbyte1/go-yolo/arr"
)

// Sentinel errors returned by Collection operations.
var (
	// ErrEmptyCollection is returned by [Collection.Reduce] when there is no
	// first item to seed the memo with. It is the same value as
	// [arr.ErrEmptySequence].
	ErrEmptyCollection = arr.ErrEmptySequence

	// ErrNoMatchingItems is returned by FirstOrFail when no item satisfies
	// the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrRaggedInput is returned by [Transpose] for rows of unequal length.
	ErrRaggedInput = arr.ErrRaggedInput

	// ErrMultiLevelPath is returned by [Collection.SortByField] when the
	// field contains a dot.
	ErrMultiLevelPath = arr.ErrMultiLevelPath
)
