// Package radix reference implementation for verification
package radix

import (
	"slices"
)

// Reference contains the simple, correct implementation the radix sort
// is verified and benchmarked against.
type Reference struct{}

// Sort sorts v in place using the standard comparison sort.
func (Reference) Sort(v []float32) {
	slices.Sort(v)
}

// IsSorted reports whether v is in non-decreasing order. NaN values are
// skipped: they have no defined position and must not fail otherwise
// ordered output.
func IsSorted(v []float32) bool {
	prev := float32(0)
	havePrev := false
	for _, x := range v {
		if x != x { // NaN
			continue
		}
		if havePrev && x < prev {
			return false
		}
		prev = x
		havePrev = true
	}
	return true
}
