package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-yolo/collections"
)

func TestMutablePushPop(t *testing.T) {
	m := collections.NewMutable[int]()
	m.Push(1).Push(2, 3)
	assert.Equal(t, 3, m.Count())

	v, ok := m.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2}, m.All())
}

func TestMutableShiftUnshift(t *testing.T) {
	m := collections.NewMutable(3)
	m.Unshift(1, 2)
	assert.Equal(t, []int{1, 2, 3}, m.All())

	v, ok := m.Shift()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3}, m.All())
}

func TestMutableEmpty(t *testing.T) {
	m := collections.NewMutable[string]()
	assert.True(t, m.IsEmpty())

	v, ok := m.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", v)

	_, ok = m.Shift()
	assert.False(t, ok)
}

func TestMutableCopiesInput(t *testing.T) {
	src := []int{1, 2}
	m := collections.NewMutable(src...)
	m.Push(3)
	src[0] = 99
	assert.Equal(t, []int{1, 2, 3}, m.All())
}

func TestMutableFreeze(t *testing.T) {
	m := collections.NewMutable(1, 2)
	frozen := m.Freeze()
	m.Push(3)
	_, _ = m.Shift()
	assert.Equal(t, []int{1, 2}, frozen.All())
	assert.Equal(t, []int{2, 3}, m.All())
}

func TestMutableAsQueue(t *testing.T) {
	q := collections.NewMutable[string]()
	q.Push("a", "b", "c")
	var out []string
	for !q.IsEmpty() {
		v, _ := q.Shift()
		out = append(out, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, out)
}
