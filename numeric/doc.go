// Package numeric implements distance metrics over fixed-length numeric
// vectors: Euclidean, Manhattan, Chebyshev, Canberra and Minkowski.
//
// Every metric is generic over a core.Ops bundle, so the same formula runs
// over float32, float64, core.Fixed and int64 elements:
//
//	d := numeric.Euclidean(core.Float64Ops{}, []float64{0, 0, 0}, []float64{3, 4, 0}) // 5
//	f := numeric.Manhattan(core.FixedOps{}, left, right)
//
// Preconditions:
//   - both vectors are non-empty and of equal length;
//   - every component satisfies |v| <= MaxElement/2;
//   - Canberra additionally requires 0 <= v <= MaxElement/4;
//   - Minkowski requires an order p >= One.
//
// A violated precondition panics with an error wrapping a core.Err* sentinel.
// Validate and ValidateNonNegative report the same error without panicking.
//
// Every result is >= Zero. Components are accumulated left to right and no
// metric allocates.
package numeric
