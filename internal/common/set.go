package common

import "cmp"

// Set is an unordered set of comparable values.
type Set[T comparable] map[T]struct{}

// NewSet creates a set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Add inserts v and reports whether it was absent.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}

	s[v] = struct{}{}

	return true
}

// Has reports whether v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// AddAll inserts every item.
func (s Set[T]) AddAll(items ...T) {
	for _, it := range items {
		s[it] = struct{}{}
	}
}

// Sorted returns the members of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return SortedKeys(s)
}
