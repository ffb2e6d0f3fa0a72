package edit

import (
	"github.com/patrikhermansson/gometric/core"
	"github.com/patrikhermansson/gometric/internal/helpers"
)

// runeDistance accepts strings of up to core.MaxCapacity runes.
var runeDistance = Distance[rune]{maxLength: core.MaxCapacity}

// HammingString counts differing runes between two equally long strings.
func HammingString(a, b string) int {
	var abuf, bbuf [core.MaxCapacity]rune
	l, r := helpers.Pair(a, b, abuf[:], bbuf[:])
	return Hamming(l, r)
}

// LevenshteinString returns the rune-level Levenshtein distance.
func LevenshteinString(a, b string) int {
	var abuf, bbuf [core.MaxCapacity]rune
	l, r := helpers.Pair(a, b, abuf[:], bbuf[:])
	return runeDistance.Levenshtein(l, r)
}

// DamerauLevenshteinString returns the rune-level optimal string alignment distance.
func DamerauLevenshteinString(a, b string) int {
	var abuf, bbuf [core.MaxCapacity]rune
	l, r := helpers.Pair(a, b, abuf[:], bbuf[:])
	return runeDistance.DamerauLevenshtein(l, r)
}
