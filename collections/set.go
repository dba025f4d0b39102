package collections

import (
	"golang.org/x/exp/maps"
)

// Set is an immutable collection of distinct comparable items with no order.
//
// Like [Collection], every operation returns a new Set. Membership is by
// Go equality (==), not identity.
//
//	admins := collections.NewSet("alice", "bob")
//	others := collections.NewSet("alice", "bob", "carol").Without(admins) // {carol}
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet creates a Set holding the distinct values among items.
func NewSet[T comparable](items ...T) *Set[T] {
	return SetFrom(items)
}

// SetFrom creates a Set holding the distinct values in items.
func SetFrom[T comparable](items []T) *Set[T] {
	s := make(map[T]struct{}, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return &Set[T]{items: s}
}

// Contains reports whether item is a member.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

// Count returns the number of members.
func (s *Set[T]) Count() int { return len(s.items) }

// IsEmpty reports whether the set has no members.
func (s *Set[T]) IsEmpty() bool { return len(s.items) == 0 }

// All returns the members as a slice in unspecified order.
func (s *Set[T]) All() []T {
	out := maps.Keys(s.items)
	if out == nil {
		return []T{}
	}
	return out
}

// ToCollection returns the members as a Collection in unspecified order.
func (s *Set[T]) ToCollection() *Collection[T] { return wrap(s.All()) }

// Each calls fn for every member and returns s unchanged. The visiting order
// is unspecified and may differ between calls; do not depend on it.
func (s *Set[T]) Each(fn func(T)) *Set[T] {
	for item := range s.items {
		fn(item)
	}
	return s
}

// Add returns a new set with items added.
func (s *Set[T]) Add(items ...T) *Set[T] {
	out := maps.Clone(s.items)
	if out == nil {
		out = make(map[T]struct{}, len(items))
	}
	for _, item := range items {
		out[item] = struct{}{}
	}
	return &Set[T]{items: out}
}

// Without returns the members of s that are not in other (set difference).
func (s *Set[T]) Without(other *Set[T]) *Set[T] {
	out := make(map[T]struct{}, len(s.items))
	for item := range s.items {
		if !other.Contains(item) {
			out[item] = struct{}{}
		}
	}
	return &Set[T]{items: out}
}

// Union returns the members found in s or other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := maps.Clone(s.items)
	if out == nil {
		out = make(map[T]struct{}, len(other.items))
	}
	maps.Copy(out, other.items)
	return &Set[T]{items: out}
}

// Intersect returns the members found in both s and other.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	out := make(map[T]struct{})
	for item := range s.items {
		if other.Contains(item) {
			out[item] = struct{}{}
		}
	}
	return &Set[T]{items: out}
}

// Equal reports whether s and other have exactly the same members.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return maps.Equal(s.items, other.items)
}
