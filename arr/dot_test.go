package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-yolo/arr"
)

func makeNested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
		},
		"hosts": map[string]any{
			"api.example.com": map[string]any{"port": 443},
		},
		"score": 42,
	}
}

func TestGet(t *testing.T) {
	m := makeNested()
	assert.Equal(t, "Alice", arr.Get(m, "user.name"))
	assert.Equal(t, "London", arr.Get(m, "user.address.city"))
	assert.Equal(t, 42, arr.Get(m, "score"))
	assert.Nil(t, arr.Get(m, "missing"))
	assert.Equal(t, "default", arr.Get(m, "missing", "default"))
}

func TestGetMissingIntermediate(t *testing.T) {
	m := map[string]any{"a": map[string]any{"b": 1}}
	assert.Nil(t, arr.Get(m, "a.c"))
	assert.Nil(t, arr.Get(m, "a.b.c"), "descending into a scalar is absent, not a panic")
	assert.Nil(t, arr.Get(m, "x.y.z"))
	assert.Nil(t, arr.Get(nil, "a"))
}

func TestGetPath(t *testing.T) {
	m := makeNested()
	v, ok := arr.GetPath(m, "hosts", "api.example.com", "port")
	assert.True(t, ok)
	assert.Equal(t, 443, v)

	_, ok = arr.GetPath(m, "hosts", "api", "example")
	assert.False(t, ok)

	_, ok = arr.GetPath(m)
	assert.False(t, ok)
}

func TestHas(t *testing.T) {
	m := makeNested()
	assert.True(t, arr.Has(m, "user.name"))
	assert.True(t, arr.Has(m, "user.address.city"))
	assert.False(t, arr.Has(m, "user.missing"))
	assert.False(t, arr.Has(m, "user.name.deep"))
}

func TestSet(t *testing.T) {
	m := map[string]any{"a": "scalar"}
	arr.Set(m, "a.b.c", 42)
	arr.Set(m, "top", true)
	assert.Equal(t, 42, arr.Get(m, "a.b.c"))
	assert.Equal(t, true, m["top"])
}

func TestDig(t *testing.T) {
	type line struct{ SKU string }
	type order struct {
		Lines []line
		Attrs map[string]int
	}
	o := &order{Lines: []line{{"A-1"}, {"B-2"}}, Attrs: map[string]int{"qty": 3}}

	v, ok := arr.Dig(o, "Lines", "1", "SKU")
	assert.True(t, ok)
	assert.Equal(t, "B-2", v)

	v, ok = arr.Dig(o, "Attrs", "qty")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	for _, path := range [][]string{{"Lines", "9"}, {"Lines", "x"}, {"Nope"}, {"Attrs", "missing"}} {
		_, ok = arr.Dig(o, path...)
		assert.False(t, ok, "path %v", path)
	}

	v, ok = arr.Dig(o)
	assert.True(t, ok)
	assert.Same(t, o, v)

	_, ok = arr.Dig((*order)(nil), "Lines")
	assert.False(t, ok)
}

func TestHasAllHasAny(t *testing.T) {
	m := makeNested()
	assert.True(t, arr.HasAll(m, "user.name", "score"))
	assert.False(t, arr.HasAll(m, "user.name", "user.age"))
	assert.True(t, arr.HasAny(m, "user.age", "user.address.city"))
	assert.False(t, arr.HasAny(m, "nope", "user.age"))
}

func TestForget(t *testing.T) {
	m := makeNested()
	arr.Forget(m, "user.address.city")
	assert.False(t, arr.Has(m, "user.address.city"))
	assert.True(t, arr.Has(m, "user.address.country"))

	arr.Forget(m, "score.deeper")
	assert.Equal(t, 42, m["score"])
}

func TestOnlyExcept(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2, "c": 3}
	assert.Equal(t, map[string]any{"a": 1, "c": 3}, arr.Only(m, "a", "c", "z"))
	assert.Equal(t, map[string]any{"b": 2}, arr.Except(m, "a", "c"))
	assert.Len(t, m, 3)
}

func TestDot(t *testing.T) {
	m := map[string]any{
		"a": map[string]any{"b": 1, "c": map[string]any{"d": 2}},
		"e": []int{1},
	}
	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": 2, "e": []int{1}}, arr.Dot(m))
}
