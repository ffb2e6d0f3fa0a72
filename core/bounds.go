package core

// CheckElements validates every element of v against |x| <= bound, and
// against x >= Zero when nonNegative is set. side names the input in the
// error message.
func CheckElements[E any, O Ops[E]](ops O, side string, v []E, bound E, nonNegative bool) error {
	for i, x := range v {
		// NaN fails this comparison too.
		if !ops.LessEq(ops.Abs(x), bound) {
			return Violation(ErrElementBound, "%s[%d]", side, i)
		}
		if nonNegative && !ops.GreaterEq(x, ops.Zero()) {
			return Violation(ErrNegativeElement, "%s[%d]", side, i)
		}
	}
	return nil
}

// CheckNonZero validates that v has at least one element different from Zero.
func CheckNonZero[E any, O Ops[E]](ops O, side string, v []E) error {
	for _, x := range v {
		if !ops.Equal(x, ops.Zero()) {
			return nil
		}
	}
	return Violation(ErrZeroVector, "%s", side)
}
