// Package textsim implements similarity scores over bounded sequences:
// Jaro, Jaro-Winkler and the Sørensen-Dice bigram coefficient. Scores lie in
// [0, 1], with 1 for identical inputs.
package textsim

import "github.com/patrikhermansson/gometric/core"

// DefaultPrefixScale is Winkler's customary prefix weight.
const DefaultPrefixScale = 0.1

// maxPrefix caps the common prefix rewarded by the Winkler boost.
const maxPrefix = 4

// maxPrefixScale keeps prefixLen·scale <= 1 for every admissible prefix.
const maxPrefixScale = 1.0 / maxPrefix

// JaroWinkler scores sequences of at most MaxLength elements.
type JaroWinkler[T comparable] struct {
	maxLength   int
	prefixScale float64
}

// NewJaroWinkler returns a JaroWinkler for sequences of up to maxLength
// elements. prefixScale must lie in [0, 0.25] so that the boosted score
// cannot exceed one.
func NewJaroWinkler[T comparable](maxLength int, prefixScale float64) JaroWinkler[T] {
	core.Require(core.CheckMaxLength(maxLength, 0))
	if !(prefixScale >= 0 && prefixScale <= maxPrefixScale) {
		core.Require(core.Violation(core.ErrPrefixScale, "%g", prefixScale))
	}
	return JaroWinkler[T]{maxLength: maxLength, prefixScale: prefixScale}
}

// Similarity returns the Jaro score boosted by the common prefix:
// jaro + prefixLen·PrefixScale·(1 - jaro), with prefixLen capped at four.
// The sum is clamped to at most 1, so floating-point rounding cannot push
// an identical-prefix score above the range.
func (j JaroWinkler[T]) Similarity(left, right []T) float64 {
	core.Require(core.CheckSequences(j.maxLength, len(left), len(right)))

	score := jaro(left, right)
	prefix := 0
	for prefix < maxPrefix && prefix < len(left) && prefix < len(right) && left[prefix] == right[prefix] {
		prefix++
	}
	return min(1, score+float64(prefix)*j.prefixScale*(1-score))
}

// Jaro returns the Jaro score without the Winkler boost.
func (j JaroWinkler[T]) Jaro(left, right []T) float64 {
	core.Require(core.CheckSequences(j.maxLength, len(left), len(right)))
	return jaro(left, right)
}

func jaro[T comparable](left, right []T) float64 {
	ll, lr := len(left), len(right)
	if ll == 0 && lr == 0 {
		return 1
	}
	if ll == 0 || lr == 0 {
		return 0
	}

	window := max(0, max(ll, lr)/2-1)

	// First unmatched equal element in the window wins, scanning right from
	// the window start rather than outward from i.
	var leftMatched, rightMatched [core.MaxCapacity]bool
	matches := 0
	for i := 0; i < ll; i++ {
		lo := max(0, i-window)
		hi := min(lr-1, i+window)
		for k := lo; k <= hi; k++ {
			if !rightMatched[k] && left[i] == right[k] {
				leftMatched[i] = true
				rightMatched[k] = true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	// Pair the matched elements in order; each differing pair is half a
	// transposition.
	mismatched := 0
	k := 0
	for i := 0; i < ll; i++ {
		if !leftMatched[i] {
			continue
		}
		for !rightMatched[k] {
			k++
		}
		if left[i] != right[k] {
			mismatched++
		}
		k++
	}

	m := float64(matches)
	t := float64(mismatched) / 2
	return (m/float64(ll) + m/float64(lr) + (m-t)/m) / 3
}
