package numeric

import "github.com/patrikhermansson/gometric/core"

// Chebyshev computes the Chebyshev (L∞) distance max_i |l_i - r_i|.
func Chebyshev[E any, O core.Ops[E]](ops O, left, right []E) E {
	core.Require(Validate(ops, left, right))

	// Seeded at Zero; every candidate is an absolute value.
	best := ops.Zero()
	for i := range left {
		best = core.Max(ops, best, ops.Abs(ops.Sub(left[i], right[i])))
	}
	return best
}
