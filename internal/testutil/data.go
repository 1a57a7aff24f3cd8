package testutil

import (
	"math/rand"
	"slices"
)

// ShuffledKeys returns 0..n-1 in a deterministic order for the given seed.
func ShuffledKeys(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}

// SortedKeys returns the keys of set in ascending order.
func SortedKeys(set map[int]int) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
