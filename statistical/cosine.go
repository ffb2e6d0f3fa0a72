// Package statistical implements similarity measures derived from dot
// products and norms: cosine similarity and L2 normalisation.
package statistical

import "github.com/patrikhermansson/gometric/core"

// Validate checks the preconditions of Cosine: equal non-empty lengths,
// |v| <= MaxElement/4 and at least one non-zero element per vector.
func Validate[E any, O core.Ops[E]](ops O, left, right []E) error {
	if err := validatePair(ops, left, right); err != nil {
		return err
	}
	if err := core.CheckNonZero(ops, "left", left); err != nil {
		return err
	}
	return core.CheckNonZero(ops, "right", right)
}

// Cosine computes dot(l, r) / (|l|·|r|).
//
// Dot product and both squared norms are accumulated in a single pass. The
// ratio is not clamped, so rounding on nearly parallel vectors can land a
// few ulps outside [-1, 1].
func Cosine[E any, O core.Ops[E]](ops O, left, right []E) E {
	core.Require(Validate(ops, left, right))

	dot, normL, normR := ops.Zero(), ops.Zero(), ops.Zero()
	for i := range left {
		dot = ops.Add(dot, ops.Mul(left[i], right[i]))
		normL = ops.Add(normL, ops.Mul(left[i], left[i]))
		normR = ops.Add(normR, ops.Mul(right[i], right[i]))
	}
	return ops.Div(dot, ops.Mul(ops.Sqrt(normL), ops.Sqrt(normR)))
}
