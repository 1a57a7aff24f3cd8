package splaytree

import "cmp"

// Comparator orders two keys. It returns a negative number when a < b,
// zero when a == b and a positive number when a > b.
// A Comparator must be a strict total order for the lifetime of any tree
// that uses it.
type Comparator[K any] func(a, b K) int

// Natural returns the comparator for K's standard Go ordering.
func Natural[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// Reverse returns a comparator that orders keys opposite to c.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return c(b, a)
	}
}

// FromLess builds a comparator from a less function, such as the
// IntLess/StringLess helpers used by treap collections.
// Two keys are equal when neither is less than the other.
func FromLess[K any](less func(a, b K) bool) Comparator[K] {
	return func(a, b K) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}
