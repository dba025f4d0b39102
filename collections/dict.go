package collections

import (
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/exp/maps"

	"github.com/hasbyte1/go-yolo/arr"
)

// Dict is an immutable associative collection with unique keys.
//
// Operations that add keys return a new Dict. When the same key is supplied
// more than once the value given last wins, and incoming values always
// override the receiver's.
//
//	d := collections.NewDict(map[string]int{"a": 1, "b": 2}).
//	    Extend(map[string]int{"b": 3, "c": 4}) // {a:1 b:3 c:4}
type Dict[K comparable, V any] struct {
	items map[K]V
}

// NewDict creates a Dict from a copy of m.
func NewDict[K comparable, V any](m map[K]V) *Dict[K, V] {
	return &Dict[K, V]{items: arr.Extend(m)}
}

// Extend returns a new Dict with every map in others merged in order.
func (d *Dict[K, V]) Extend(others ...map[K]V) *Dict[K, V] {
	return &Dict[K, V]{items: arr.Extend(d.items, others...)}
}

// Merge returns a new Dict with the entries of other merged over d.
func (d *Dict[K, V]) Merge(other *Dict[K, V]) *Dict[K, V] { return d.Extend(other.items) }

// With returns a new Dict with key set to value.
func (d *Dict[K, V]) With(key K, value V) *Dict[K, V] {
	return &Dict[K, V]{items: arr.ExtendPairs(d.items, arr.Pair[K, V]{First: key, Second: value})}
}

// Get returns the value stored under key. Returns the zero value and false
// when key is absent.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	v, ok := d.items[key]
	return v, ok
}

// Lookup resolves a dot-separated path starting at d, descending through
// nested maps, struct fields and slice indices (see [arr.Dig]). It returns
// nil and false when any segment is missing; it never panics.
//
//	cfg.Lookup("db.primary.host")
func (d *Dict[K, V]) Lookup(path string) (any, bool) {
	return arr.Dig(d.items, strings.Split(path, ".")...)
}

// Has reports whether key is present.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.items[key]
	return ok
}

// Count returns the number of entries.
func (d *Dict[K, V]) Count() int { return len(d.items) }

// Keys returns the keys in unspecified order.
func (d *Dict[K, V]) Keys() []K { return maps.Keys(d.items) }

// Values returns the values in unspecified order.
func (d *Dict[K, V]) Values() []V { return maps.Values(d.items) }

// All returns a copy of the underlying map.
func (d *Dict[K, V]) All() map[K]V { return arr.Extend(d.items) }

// ToJSON serialises the entries as a JSON object.
func (d *Dict[K, V]) ToJSON() ([]byte, error) { return json.Marshal(d.items) }
