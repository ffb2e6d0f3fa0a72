package numeric

import "github.com/patrikhermansson/gometric/core"

// Manhattan computes the Manhattan (L1) distance Σ|l_i - r_i|.
func Manhattan[E any, O core.Ops[E]](ops O, left, right []E) E {
	core.Require(Validate(ops, left, right))

	sum := ops.Zero()
	for i := range left {
		sum = ops.Add(sum, ops.Abs(ops.Sub(left[i], right[i])))
	}
	return sum
}
