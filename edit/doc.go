// Package edit implements edit distances over bounded sequences: Hamming,
// Levenshtein and the optimal string alignment variant of
// Damerau-Levenshtein.
//
// Sequences are slices of any comparable element type. Levenshtein and
// Damerau-Levenshtein run on a Distance value that fixes MaxLength at
// construction; all dynamic-programming rows are fixed arrays of
// core.MaxCapacity+1 cells declared on the call stack, so no call allocates.
//
//	d := edit.New[rune](32)
//	d.Levenshtein([]rune("kitten"), []rune("sitting")) // 3
//
// The *String helpers decode UTF-8 into rune buffers of core.MaxCapacity.
package edit
