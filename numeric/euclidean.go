package numeric

import "github.com/patrikhermansson/gometric/core"

// Euclidean computes the Euclidean (L2) distance sqrt(Σ(l_i - r_i)²).
func Euclidean[E any, O core.Ops[E]](ops O, left, right []E) E {
	core.Require(Validate(ops, left, right))

	sum := ops.Zero()
	for i := range left {
		d := ops.Sub(left[i], right[i])
		sum = ops.Add(sum, ops.Mul(d, d))
	}
	return ops.Sqrt(sum)
}
