// Package sets provides utility functions for common operations on sets of
// strings. Sets are represented as map[string]struct{} for efficient lookups.
package sets

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Union returns a new set containing all elements present in either set a or set b.
func Union(a, b Set) Set {
	result := make(Set, len(a)+len(b))
	for k := range a {
		result[k] = struct{}{}
	}
	for k := range b {
		result[k] = struct{}{}
	}
	return result
}

// Intersection returns a new set containing only the elements present in both set a and set b.
func Intersection(a, b Set) Set {
	// Iterate over the smaller set.
	if len(a) > len(b) {
		a, b = b, a
	}

	result := make(Set)
	for k := range a {
		if b.Contains(k) {
			result.Add(k)
		}
	}
	return result
}

// Subtract returns a new set containing elements from set a that are not present in set b.
func Subtract(a, b Set) Set {
	result := make(Set)
	for k := range a {
		if !b.Contains(k) {
			result.Add(k)
		}
	}
	return result
}

// MakeSlice converts a Set into a new slice sorted by byte-wise string comparison.
func MakeSlice(set Set) OrderedSet {
	keys := maps.Keys(set)
	slices.Sort(keys)
	return OrderedSet(keys)
}
