package textsim

import "github.com/patrikhermansson/gometric/core"

// SorensenDice scores sequences of at most MaxLength elements by the overlap
// of their bigrams.
type SorensenDice[T comparable] struct {
	maxLength int
}

// NewSorensenDice returns a SorensenDice for sequences of up to maxLength
// elements. maxLength must lie in [2, core.MaxCapacity].
func NewSorensenDice[T comparable](maxLength int) SorensenDice[T] {
	core.Require(core.CheckMaxLength(maxLength, 2))
	return SorensenDice[T]{maxLength: maxLength}
}

type bigram[T comparable] struct {
	first, second T
}

// Coefficient returns 2·|B(l) ∩ B(r)| / (|B(l)| + |B(r)|), where B is the
// multiset of overlapping bigrams. Sequences too short to have a bigram
// score 1 against an equal sequence and 0 otherwise.
func (s SorensenDice[T]) Coefficient(left, right []T) float64 {
	core.Require(core.CheckSequences(s.maxLength, len(left), len(right)))

	ll, lr := len(left), len(right)
	if ll < 2 && lr < 2 {
		if ll == lr && (ll == 0 || left[0] == right[0]) {
			return 1
		}
		return 0
	}
	if ll < 2 || lr < 2 {
		return 0
	}

	var leftBigrams, rightBigrams [core.MaxCapacity - 1]bigram[T]
	nl := bigrams(left, leftBigrams[:])
	nr := bigrams(right, rightBigrams[:])

	// Each left bigram consumes at most one equal right bigram, which makes
	// the count a multiset intersection.
	var used [core.MaxCapacity - 1]bool
	intersection := 0
	for i := 0; i < nl; i++ {
		for k := 0; k < nr; k++ {
			if !used[k] && leftBigrams[i] == rightBigrams[k] {
				used[k] = true
				intersection++
				break
			}
		}
	}
	return 2 * float64(intersection) / float64(nl+nr)
}

func bigrams[T comparable](seq []T, out []bigram[T]) int {
	n := 0
	for i := 0; i+1 < len(seq); i++ {
		out[n] = bigram[T]{seq[i], seq[i+1]}
		n++
	}
	return n
}
