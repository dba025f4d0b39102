package arr_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-yolo/arr"
)

// ─── Slice ────────────────────────────────────────────────────────────────────

func TestSlice(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	cases := []struct {
		start, length int
		want          []int
	}{
		{0, 2, []int{1, 2}},
		{1, 3, []int{2, 3, 4}},
		{1, 4, []int{2, 3, 4, 5}},
		{1, -1, []int{2, 3, 4, 5}},
		{0, -2, []int{1, 2, 3, 4}},
		{-2, 10, []int{4, 5}},
		{-1, 1, []int{5}},
		{-3, -2, []int{3, 4}},
		{-10, 2, []int{1, 2}},
		{2, 100, []int{3, 4, 5}},
		{5, 1, []int{}},
		{3, -4, []int{}},
		{0, 0, []int{}},
		{1, -100, []int{}},
		{1, math.MaxInt, []int{2, 3, 4, 5}},
		{-2, math.MaxInt, []int{4, 5}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d,%d", tc.start, tc.length), func(t *testing.T) {
			assert.Equal(t, tc.want, arr.Slice(s, tc.start, tc.length))
		})
	}
}

func TestSliceNegativeLengthMatchesPositive(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	assert.Equal(t, arr.Slice(s, 1, 4), arr.Slice(s, 1, -1))
}

func TestSliceCopies(t *testing.T) {
	s := []int{1, 2, 3}
	out := arr.Slice(s, 0, 2)
	out[0] = 99
	assert.Equal(t, 1, s[0])
}

func TestFirstNLastN(t *testing.T) {
	s := []int{1, 2, 3, 4}
	assert.Equal(t, []int{1, 2}, arr.FirstN(s, 2))
	assert.Equal(t, []int{3, 4}, arr.LastN(s, 2))
	assert.Equal(t, s, arr.FirstN(s, 10))
	assert.Equal(t, s, arr.LastN(s, 4))
	assert.Equal(t, []int{}, arr.FirstN(s, 0))
	assert.Equal(t, []int{}, arr.LastN(s, -3))
}

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, arr.Chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Empty(t, arr.Chunk([]int{}, 2))
	assert.Empty(t, arr.Chunk([]int{1}, 0))
}

// ─── Restructuring ────────────────────────────────────────────────────────────

func TestConcat(t *testing.T) {
	a := []int{1, 2}
	got := arr.Concat(a, []int{3}, []int{4, 5})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.Equal(t, []int{1, 2}, a)
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, arr.Collapse([][]int{{1, 2}, {3, 4}, {5}}))
	assert.Equal(t, []int{}, arr.Collapse([][]int{}))
}

func TestFlattenDeep(t *testing.T) {
	got := arr.Flatten([]any{1, []any{2, []any{3, []any{4}}}, []int{5, 6}, "seven", [2]string{"8", "9"}})
	assert.Equal(t, []any{1, 2, 3, 4, 5, 6, "seven", "8", "9"}, got)
}

func TestFlattenKeepsBytesAndNil(t *testing.T) {
	got := arr.Flatten([]any{[]byte("ab"), nil, []any{}})
	assert.Equal(t, []any{[]byte("ab"), nil}, got)
}

func TestReverse(t *testing.T) {
	in := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, arr.Reverse(in))
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Equal(t, []int{}, arr.Reverse([]int(nil)))
}

func TestRotate(t *testing.T) {
	s := []int{1, 2, 3, 4}
	assert.Equal(t, []int{2, 3, 4, 1}, arr.Rotate(s, 1))
	assert.Equal(t, []int{4, 1, 2, 3}, arr.Rotate(s, -1))
	assert.Equal(t, []int{3, 4, 1, 2}, arr.Rotate(s, 6))
	assert.Equal(t, s, arr.Rotate(s, 0))
	assert.Equal(t, s, arr.Rotate(s, -8))
	assert.Equal(t, []int{}, arr.Rotate([]int{}, 3))
}

func TestRotateRoundTrip(t *testing.T) {
	rng := arr.NewRand(7)
	for n := 0; n < 12; n++ {
		s := arr.Upto(1, n, nil)
		for i := 0; i < 20; i++ {
			k := rng.Intn(60) - 30
			assert.Equal(t, s, arr.Rotate(arr.Rotate(s, k), -k), "n=%d k=%d", n, k)
		}
	}
}

func TestTranspose(t *testing.T) {
	got, err := arr.Transpose([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, got)

	got, err = arr.Transpose([][]int{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTransposeRagged(t *testing.T) {
	_, err := arr.Transpose([][]int{{1, 2}, {3}})
	assert.True(t, errors.Is(err, arr.ErrRaggedInput))
}

type label string

func (l label) String() string { return "<" + string(l) + ">" }

func TestJoin(t *testing.T) {
	assert.Equal(t, "123", arr.Join([]int{1, 2, 3}))
	assert.Equal(t, "1, 2, 3", arr.Join([]int{1, 2, 3}, ", "))
	assert.Equal(t, "<a>-<b>", arr.Join([]label{"a", "b"}, "-"))
	assert.Equal(t, "", arr.Join([]string{}))
}

// ─── Grouping ─────────────────────────────────────────────────────────────────

func TestGroupByKeepsOrder(t *testing.T) {
	words := []string{"apple", "bob", "avocado", "banana", "cherry", "apricot"}
	groups := arr.GroupBy(words, func(s string) byte { return s[0] })
	assert.Len(t, groups, 3)
	assert.Equal(t, []string{"apple", "avocado", "apricot"}, groups['a'])
	assert.Equal(t, []string{"bob", "banana"}, groups['b'])
	assert.Equal(t, []string{"cherry"}, groups['c'])
}

func TestKeyBy(t *testing.T) {
	got := arr.KeyBy([]scored{{"a", 1}, {"b", 2}, {"a", 3}}, func(s scored) string { return s.Name })
	assert.Equal(t, 3, got["a"].Score)
	assert.Equal(t, 2, got["b"].Score)
}

func TestCombine(t *testing.T) {
	m, err := arr.Combine([]string{"a", "b"}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, m)

	_, err = arr.Combine([]string{"a"}, []int{1, 2})
	assert.ErrorIs(t, err, arr.ErrMismatchedLengths)
}
