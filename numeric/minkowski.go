package numeric

import "github.com/patrikhermansson/gometric/core"

// Minkowski computes the Minkowski distance of order p, (Σ|l_i - r_i|^p)^(1/p).
//
// Orders one and two are computed exactly as Manhattan and Euclidean. For
// other orders, bundles with fractional values factor out the largest
// difference m and evaluate m·exp(log(Σ exp(p·log(|d_i|/m)))/p), so every
// term lies in (0, 1] and no pow is needed for non-integral p. A zero
// difference contributes nothing, without taking log(0). Integer bundles
// sum exact powers and take the floor root; a power sum that does not fit
// the element type panics with core.ErrElementBound. p must be at least One.
func Minkowski[E any, O core.Ops[E]](ops O, left, right []E, p E) E {
	core.Require(Validate(ops, left, right))
	if !ops.GreaterEq(p, ops.One()) {
		core.Require(core.Violation(core.ErrOrder, "p = %v", p))
	}

	switch {
	case ops.Equal(p, ops.One()):
		return Manhattan(ops, left, right)
	case ops.Equal(p, ops.Add(ops.One(), ops.One())):
		return Euclidean(ops, left, right)
	case fractional(ops):
		return scaledMinkowski(ops, left, right, p)
	default:
		return exactMinkowski(ops, left, right, p)
	}
}

// fractional reports whether ops represents values strictly between Zero and One.
func fractional[E any, O core.Ops[E]](ops O) bool {
	return !ops.Equal(core.Half(ops, ops.One()), ops.Zero())
}

func scaledMinkowski[E any, O core.Ops[E]](ops O, left, right []E, p E) E {
	m := ops.Zero()
	for i := range left {
		m = core.Max(ops, m, ops.Abs(ops.Sub(left[i], right[i])))
	}
	if ops.Equal(m, ops.Zero()) {
		return ops.Zero()
	}

	sum := ops.Zero()
	for i := range left {
		// A ratio that underflows to Zero contributes nothing, like d = Zero.
		ratio := ops.Div(ops.Abs(ops.Sub(left[i], right[i])), m)
		if ops.Equal(ratio, ops.Zero()) {
			continue
		}
		// log of a ratio in (0, 1] is non-positive, so the term stays in (0, 1].
		sum = ops.Add(sum, ops.Exp(ops.Mul(p, ops.Log(ratio))))
	}
	return ops.Mul(m, ops.Exp(ops.Div(ops.Log(sum), p)))
}

func exactMinkowski[E any, O core.Ops[E]](ops O, left, right []E, p E) E {
	sum := ops.Zero()
	for i := range left {
		d := ops.Abs(ops.Sub(left[i], right[i]))
		if ops.Equal(d, ops.Zero()) {
			continue
		}
		term, ok := checkedPow(ops, d, p)
		next := ops.Add(sum, term)
		// term >= One, so a sum that did not grow has wrapped.
		if !ok || ops.LessEq(next, sum) {
			core.Require(core.Violation(core.ErrElementBound, "Minkowski power sum of order %v overflows at index %d", p, i))
		}
		sum = next
	}
	if ops.Equal(sum, ops.Zero()) {
		return ops.Zero()
	}
	return floorRoot(ops, sum, p)
}

// checkedPow returns x^p for an integer x >= One, or false if a product
// overflowed.
func checkedPow[E any, O core.Ops[E]](ops O, x, p E) (E, bool) {
	if ops.Equal(x, ops.One()) {
		return x, true
	}
	acc := ops.One()
	for k := ops.One(); ops.LessEq(k, p); k = ops.Add(k, ops.One()) {
		next := ops.Mul(acc, x)
		if !ops.Equal(ops.Div(next, x), acc) || !ops.GreaterEq(next, acc) {
			return acc, false
		}
		acc = next
	}
	return acc, true
}

// floorRoot returns the largest r with r^p <= s, for an integer s >= One.
func floorRoot[E any, O core.Ops[E]](ops O, s, p E) E {
	fits := func(r E) bool {
		pow, ok := checkedPow(ops, r, p)
		return ok && ops.LessEq(pow, s)
	}
	lo, hi := ops.One(), s
	for ops.GreaterEq(ops.Sub(hi, lo), ops.Add(ops.One(), ops.One())) {
		mid := ops.Add(lo, core.Half(ops, ops.Sub(hi, lo)))
		if fits(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	if fits(hi) {
		return hi
	}
	return lo
}
