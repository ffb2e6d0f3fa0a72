// Package helpers holds small utilities shared by the textual metrics.
package helpers

import (
	"unicode/utf8"

	"github.com/patrikhermansson/gometric/core"
)

// Runes decodes s into buf and returns the filled prefix of buf. It fails
// with core.ErrMaxLength if s has more runes than buf can hold. Invalid
// UTF-8 bytes decode to utf8.RuneError one byte at a time, as []rune(s) does.
func Runes(s string, buf []rune) ([]rune, error) {
	n := 0
	for _, r := range s {
		if n == len(buf) {
			return nil, core.Violation(core.ErrMaxLength, "%d runes > %d", utf8.RuneCountInString(s), len(buf))
		}
		buf[n] = r
		n++
	}
	return buf[:n], nil
}

// Pair decodes two strings into their buffers, panicking on overflow.
func Pair(a, b string, abuf, bbuf []rune) ([]rune, []rune) {
	l, err := Runes(a, abuf)
	core.Require(err)
	r, err := Runes(b, bbuf)
	core.Require(err)
	return l, r
}
