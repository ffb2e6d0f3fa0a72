package numeric

import "github.com/patrikhermansson/gometric/core"

// Validate checks the preconditions of Euclidean, Manhattan, Chebyshev and
// Minkowski: equal non-empty lengths and |v| <= MaxElement/2.
func Validate[E any, O core.Ops[E]](ops O, left, right []E) error {
	return validate(ops, left, right, core.Half(ops, ops.MaxElement()), false)
}

// ValidateNonNegative checks the preconditions of Canberra: equal non-empty
// lengths and 0 <= v <= MaxElement/4.
func ValidateNonNegative[E any, O core.Ops[E]](ops O, left, right []E) error {
	return validate(ops, left, right, core.Quarter(ops, ops.MaxElement()), true)
}

func validate[E any, O core.Ops[E]](ops O, left, right []E, bound E, nonNegative bool) error {
	if err := core.CheckPair(len(left), len(right)); err != nil {
		return err
	}
	if err := core.CheckElements(ops, "left", left, bound, nonNegative); err != nil {
		return err
	}
	return core.CheckElements(ops, "right", right, bound, nonNegative)
}
