package textsim_test

import (
	"fmt"

	"github.com/patrikhermansson/gometric/textsim"
)

func ExampleJaroWinkler_Similarity() {
	jw := textsim.NewJaroWinkler[rune](32, textsim.DefaultPrefixScale)
	fmt.Printf("%.4f\n", jw.Similarity([]rune("MARTHA"), []rune("MARHTA")))
	fmt.Printf("%.4f\n", jw.Similarity([]rune("MARTHA"), []rune("XARTHA")))
	// Output:
	// 0.9611
	// 0.8889
}

func ExampleSorensenDice_Coefficient() {
	sd := textsim.NewSorensenDice[byte](32)
	fmt.Println(sd.Coefficient([]byte("night"), []byte("nacht")))
	// Output:
	// 0.25
}
