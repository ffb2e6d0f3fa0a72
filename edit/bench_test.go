package edit_test

import (
	"strings"
	"testing"

	"github.com/patrikhermansson/gometric/edit"
)

func benchmarkEdit(b *testing.B, n int, fn func(l, r []rune) int) {
	l := []rune(strings.Repeat("abcde", n/5))
	r := []rune(strings.Repeat("badce", n/5))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn(l, r)
	}
}

func BenchmarkLevenshtein100(b *testing.B) {
	d := edit.New[rune](100)
	benchmarkEdit(b, 100, d.Levenshtein)
}

func BenchmarkDamerauLevenshtein100(b *testing.B) {
	d := edit.New[rune](100)
	benchmarkEdit(b, 100, d.DamerauLevenshtein)
}
