package textsim

import (
	"github.com/patrikhermansson/gometric/core"
	"github.com/patrikhermansson/gometric/internal/helpers"
)

var (
	runeJaroWinkler = JaroWinkler[rune]{maxLength: core.MaxCapacity, prefixScale: DefaultPrefixScale}
	runeDice        = SorensenDice[rune]{maxLength: core.MaxCapacity}
)

// JaroWinklerString returns the rune-level Jaro-Winkler similarity with
// DefaultPrefixScale.
func JaroWinklerString(a, b string) float64 {
	var abuf, bbuf [core.MaxCapacity]rune
	l, r := helpers.Pair(a, b, abuf[:], bbuf[:])
	return runeJaroWinkler.Similarity(l, r)
}

// JaroString returns the rune-level Jaro similarity.
func JaroString(a, b string) float64 {
	var abuf, bbuf [core.MaxCapacity]rune
	l, r := helpers.Pair(a, b, abuf[:], bbuf[:])
	return runeJaroWinkler.Jaro(l, r)
}

// SorensenDiceString returns the rune-bigram Sørensen-Dice coefficient.
func SorensenDiceString(a, b string) float64 {
	var abuf, bbuf [core.MaxCapacity]rune
	l, r := helpers.Pair(a, b, abuf[:], bbuf[:])
	return runeDice.Coefficient(l, r)
}
