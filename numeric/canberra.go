package numeric

import "github.com/patrikhermansson/gometric/core"

// Canberra computes Σ |l_i - r_i| / (|l_i| + |r_i|).
//
// Components must be non-negative and at most MaxElement/4. A term whose
// denominator is Zero contributes nothing, so 0/0 counts as 0.
func Canberra[E any, O core.Ops[E]](ops O, left, right []E) E {
	core.Require(ValidateNonNegative(ops, left, right))

	sum := ops.Zero()
	for i := range left {
		den := ops.Add(ops.Abs(left[i]), ops.Abs(right[i]))
		if ops.LessEq(den, ops.Zero()) {
			continue
		}
		num := ops.Abs(ops.Sub(left[i], right[i]))
		sum = ops.Add(sum, ops.Div(num, den))
	}
	return sum
}
