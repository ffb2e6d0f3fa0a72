package edit_test

import (
	"fmt"

	"github.com/patrikhermansson/gometric/edit"
)

func ExampleDistance_Levenshtein() {
	d := edit.New[rune](16)
	fmt.Println(d.Levenshtein([]rune("kitten"), []rune("sitting")))
	fmt.Println(d.Levenshtein([]rune("ca"), []rune("ac")))
	// Output:
	// 3
	// 2
}

func ExampleDistance_DamerauLevenshtein() {
	d := edit.New[byte](16)
	fmt.Println(d.DamerauLevenshtein([]byte("ca"), []byte("ac")))
	fmt.Println(d.DamerauLevenshtein([]byte("abcdef"), []byte("bacdfe")))
	// Output:
	// 1
	// 2
}

func ExampleHammingString() {
	fmt.Println(edit.HammingString("karolin", "kathrin"))
	// Output:
	// 3
}
