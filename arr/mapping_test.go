package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-yolo/arr"
)

func TestExtendLastWriteWins(t *testing.T) {
	base := map[string]int{"a": 1, "b": 2}
	got := arr.Extend(base, map[string]int{"b": 3, "c": 4})
	assert.Equal(t, map[string]int{"a": 1, "b": 3, "c": 4}, got)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, base, "receiver must not change")
}

func TestExtendLaterArgumentsWin(t *testing.T) {
	got := arr.Extend(map[string]int{"k": 0}, map[string]int{"k": 1}, map[string]int{"k": 2})
	assert.Equal(t, 2, got["k"])
}

func TestExtendNilReceiver(t *testing.T) {
	got := arr.Extend(nil, map[string]int{"a": 1})
	assert.Equal(t, map[string]int{"a": 1}, got)
}

func TestExtendPairs(t *testing.T) {
	got := arr.ExtendPairs(map[int]string{1: "one"},
		arr.Pair[int, string]{First: 2, Second: "two"},
		arr.Pair[int, string]{First: 1, Second: "uno"},
	)
	assert.Equal(t, map[int]string{1: "uno", 2: "two"}, got)
}

func TestExtendKV(t *testing.T) {
	base := map[string]any{"a": 1, "b": 2}

	got, err := arr.ExtendKV(base, "b", 3, "c", 4)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 3, "c": 4}, got)

	got, err = arr.ExtendKV(base, map[string]any{"b": 3, "c": 4})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 3, "c": 4}, got)

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, base)
}

func TestExtendKVErrors(t *testing.T) {
	_, err := arr.ExtendKV(nil, "a", 1, "b")
	assert.ErrorIs(t, err, arr.ErrOddKeyValues)

	_, err = arr.ExtendKV(nil, 1, "a")
	assert.ErrorIs(t, err, arr.ErrNonStringKey)
}

func TestExtendDeep(t *testing.T) {
	base := map[string]any{
		"a":      1,
		"nested": map[string]any{"x": 10, "y": 1},
	}
	got := arr.ExtendDeep(base, map[string]any{
		"b":      2,
		"nested": map[string]any{"y": 20},
	})
	assert.Equal(t, map[string]any{
		"a":      1,
		"b":      2,
		"nested": map[string]any{"x": 10, "y": 20},
	}, got)
	assert.Equal(t, 1, arr.Get(base, "nested.y"), "nested receiver maps must not change")
}
