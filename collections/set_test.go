package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-yolo/collections"
)

func TestNewSetDeduplicates(t *testing.T) {
	s := collections.NewSet("a", "b", "a")
	assert.Equal(t, 2, s.Count())
	assert.ElementsMatch(t, []string{"a", "b"}, s.All())
	assert.False(t, s.IsEmpty())
	assert.True(t, collections.NewSet[int]().IsEmpty())
	assert.Equal(t, []int{}, collections.NewSet[int]().All())
}

func TestSetWithout(t *testing.T) {
	all := collections.NewSet("alice", "bob", "carol")
	admins := collections.NewSet("alice", "bob", "mallory")
	got := all.Without(admins)
	assert.ElementsMatch(t, []string{"carol"}, got.All())
	assert.Equal(t, 3, all.Count(), "receiver unchanged")
}

func TestSetUnionIntersect(t *testing.T) {
	a := collections.NewSet(1, 2, 3)
	b := collections.NewSet(3, 4)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, a.Union(b).All())
	assert.ElementsMatch(t, []int{3}, a.Intersect(b).All())
	assert.True(t, a.Intersect(collections.NewSet(9)).IsEmpty())
}

func TestSetAddReturnsNewSet(t *testing.T) {
	a := collections.NewSet(1)
	b := a.Add(2, 1)
	assert.False(t, a.Contains(2))
	assert.True(t, b.Contains(2))
	assert.Equal(t, 2, b.Count())
}

func TestSetEach(t *testing.T) {
	s := collections.NewSet(1, 2, 3)
	sum := 0
	got := s.Each(func(n int) { sum += n })
	assert.Same(t, s, got)
	assert.Equal(t, 6, sum)
}

func TestSetEqualAndToCollection(t *testing.T) {
	a := collections.NewSet(1, 2)
	assert.True(t, a.Equal(collections.SetFrom([]int{2, 1, 2})))
	assert.False(t, a.Equal(collections.NewSet(1)))
	assert.Equal(t, []int{1, 2}, collections.Sort(a.ToCollection()).All())
}
