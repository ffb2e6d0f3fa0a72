package edit

import "github.com/patrikhermansson/gometric/core"

// Distance computes edit distances between sequences of at most MaxLength
// elements. The zero value accepts only empty sequences.
type Distance[T comparable] struct {
	maxLength int
}

// New returns a Distance for sequences of up to maxLength elements.
// It panics with core.ErrCapacity unless 0 <= maxLength <= core.MaxCapacity.
func New[T comparable](maxLength int) Distance[T] {
	core.Require(core.CheckMaxLength(maxLength, 0))
	return Distance[T]{maxLength: maxLength}
}

// MaxLength returns the longest sequence d accepts.
func (d Distance[T]) MaxLength() int {
	return d.maxLength
}

// Levenshtein returns the minimum number of insertions, deletions and
// substitutions turning left into right.
func (d Distance[T]) Levenshtein(left, right []T) int {
	core.Require(core.CheckSequences(d.maxLength, len(left), len(right)))
	if len(left) == 0 {
		return len(right)
	}
	if len(right) == 0 {
		return len(left)
	}

	var rows [2][core.MaxCapacity + 1]int
	prev, cur := &rows[0], &rows[1]

	// Row zero: insertions only.
	for j := 0; j <= len(right); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(left); i++ {
		cur[0] = i
		for j := 1; j <= len(right); j++ {
			cost := 1
			if left[i-1] == right[j-1] {
				cost = 0
			}
			cur[j] = min(
				prev[j]+1,      // deletion
				cur[j-1]+1,     // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, cur = cur, prev
	}
	return prev[len(right)]
}

// DamerauLevenshtein returns the optimal string alignment distance: the
// Levenshtein operations plus transposition of two adjacent elements. No
// substring is edited more than once, so a transposed pair cannot take part
// in a later edit.
func (d Distance[T]) DamerauLevenshtein(left, right []T) int {
	core.Require(core.CheckSequences(d.maxLength, len(left), len(right)))
	if len(left) == 0 {
		return len(right)
	}
	if len(right) == 0 {
		return len(left)
	}

	var rows [3][core.MaxCapacity + 1]int
	prev2, prev, cur := &rows[0], &rows[1], &rows[2]

	for j := 0; j <= len(right); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(left); i++ {
		cur[0] = i
		for j := 1; j <= len(right); j++ {
			cost := 1
			if left[i-1] == right[j-1] {
				cost = 0
			}
			best := min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && left[i-1] == right[j-2] && left[i-2] == right[j-1] {
				best = min(best, prev2[j-2]+1)
			}
			cur[j] = best
		}
		prev2, prev, cur = prev, cur, prev2
	}
	return prev[len(right)]
}
