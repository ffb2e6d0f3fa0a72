package statistical

import "github.com/patrikhermansson/gometric/core"

// Dot computes Σ l_i·r_i over equally long vectors with |v| <= MaxElement/4.
func Dot[E any, O core.Ops[E]](ops O, left, right []E) E {
	core.Require(validatePair(ops, left, right))

	sum := ops.Zero()
	for i := range left {
		sum = ops.Add(sum, ops.Mul(left[i], right[i]))
	}
	return sum
}

// SquaredNorm computes Σ v_i² over a non-empty vector with |v| <= MaxElement/4.
func SquaredNorm[E any, O core.Ops[E]](ops O, v []E) E {
	core.Require(validateOne(ops, v))

	sum := ops.Zero()
	for _, x := range v {
		sum = ops.Add(sum, ops.Mul(x, x))
	}
	return sum
}

// NormalizeInPlace scales v to unit L2 norm.
// Returns false, leaving v untouched, if v is empty or has zero norm.
func NormalizeInPlace[E any, O core.Ops[E]](ops O, v []E) bool {
	if len(v) == 0 {
		return false
	}
	norm := ops.Sqrt(SquaredNorm(ops, v))
	if ops.LessEq(norm, ops.Zero()) {
		return false
	}
	for i := range v {
		v[i] = ops.Div(v[i], norm)
	}
	return true
}

func validatePair[E any, O core.Ops[E]](ops O, left, right []E) error {
	if err := core.CheckPair(len(left), len(right)); err != nil {
		return err
	}
	bound := core.Quarter(ops, ops.MaxElement())
	if err := core.CheckElements(ops, "left", left, bound, false); err != nil {
		return err
	}
	return core.CheckElements(ops, "right", right, bound, false)
}

func validateOne[E any, O core.Ops[E]](ops O, v []E) error {
	if len(v) == 0 {
		return core.ErrEmptyVector
	}
	return core.CheckElements(ops, "vector", v, core.Quarter(ops, ops.MaxElement()), false)
}
