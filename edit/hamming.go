package edit

import "github.com/patrikhermansson/gometric/core"

// Hamming counts the positions at which left and right differ.
// Both sequences must be non-empty and of equal length.
func Hamming[T comparable](left, right []T) int {
	core.Require(core.CheckPair(len(left), len(right)))

	n := 0
	for i := range left {
		if left[i] != right[i] {
			n++
		}
	}
	return n
}
