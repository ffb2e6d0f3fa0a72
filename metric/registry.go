// Package metric maps human-readable names to the library's metrics so that
// callers can choose one at run time.
package metric

import (
	"fmt"
	"sort"

	"github.com/patrikhermansson/gometric/core"
	"github.com/patrikhermansson/gometric/edit"
	"github.com/patrikhermansson/gometric/numeric"
	"github.com/patrikhermansson/gometric/statistical"
	"github.com/patrikhermansson/gometric/textsim"
	"github.com/rs/zerolog/log"
)

// VectorFunc computes a distance or similarity between two float64 vectors.
type VectorFunc func(a, b []float64) float64

// TextFunc computes a distance or similarity between two strings.
type TextFunc func(a, b string) float64

var f64 = core.Float64Ops{}

// Vectors is a map of names to float64 vector metrics.
var Vectors = map[string]VectorFunc{
	"euclidean": func(a, b []float64) float64 { return numeric.Euclidean(f64, a, b) },
	"manhattan": func(a, b []float64) float64 { return numeric.Manhattan(f64, a, b) },
	"chebyshev": func(a, b []float64) float64 { return numeric.Chebyshev(f64, a, b) },
	"canberra":  func(a, b []float64) float64 { return numeric.Canberra(f64, a, b) },
	"minkowski3": func(a, b []float64) float64 {
		return numeric.Minkowski(f64, a, b, 3)
	},
	"cosine": func(a, b []float64) float64 { return statistical.Cosine(f64, a, b) },
}

// Texts is a map of names to string metrics. Distances are reported as
// float64 so every text metric shares one signature.
var Texts = map[string]TextFunc{
	"hamming":       func(a, b string) float64 { return float64(edit.HammingString(a, b)) },
	"levenshtein":   func(a, b string) float64 { return float64(edit.LevenshteinString(a, b)) },
	"damerau":       func(a, b string) float64 { return float64(edit.DamerauLevenshteinString(a, b)) },
	"jaro":          textsim.JaroString,
	"jaro-winkler":  textsim.JaroWinklerString,
	"sorensen-dice": textsim.SorensenDiceString,
}

// LookupVector returns the vector metric registered under name.
func LookupVector(name string) (VectorFunc, error) {
	fn, ok := Vectors[name]
	if !ok {
		return nil, fmt.Errorf("vector metric %q: %w", name, core.ErrUnknownMetric)
	}
	log.Debug().Str("metric", name).Msg("Resolved vector metric")
	return fn, nil
}

// LookupText returns the text metric registered under name.
func LookupText(name string) (TextFunc, error) {
	fn, ok := Texts[name]
	if !ok {
		return nil, fmt.Errorf("text metric %q: %w", name, core.ErrUnknownMetric)
	}
	log.Debug().Str("metric", name).Msg("Resolved text metric")
	return fn, nil
}

// Names returns the sorted names registered in m.
func Names[F any](m map[string]F) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
