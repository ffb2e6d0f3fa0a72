package core

// Ops is the capability set a numeric element type must provide before any
// numeric or statistical metric can run over it.
//
// Implementations are zero-size value types with no state, so passing one by
// value costs nothing and every metric is monomorphised per bundle.
// Adding a new numeric representation means writing one more Ops bundle; the
// metric code does not change.
type Ops[E any] interface {
	// Zero is the additive identity.
	Zero() E
	// One is the multiplicative identity.
	One() E
	// MaxElement bounds the magnitude of every intermediate value. Inputs are
	// limited to MaxElement/2 (MaxElement/4 for reciprocal and squared sums)
	// so that no accumulation can leave the representable range.
	MaxElement() E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Div(a, b E) E
	Abs(a E) E

	LessEq(a, b E) bool
	GreaterEq(a, b E) bool
	Equal(a, b E) bool

	// Sqrt returns a non-negative root for a non-negative argument.
	Sqrt(a E) E
	Pow(base, exp E) E
	Exp(a E) E
	// Log is only called with strictly positive arguments.
	Log(a E) E
}

// Half returns x/2 in the representation of ops.
func Half[E any, O Ops[E]](ops O, x E) E {
	return ops.Div(x, ops.Add(ops.One(), ops.One()))
}

// Quarter returns x/4 in the representation of ops.
func Quarter[E any, O Ops[E]](ops O, x E) E {
	return Half(ops, Half(ops, x))
}

// Max returns the larger of a and b.
func Max[E any, O Ops[E]](ops O, a, b E) E {
	if ops.GreaterEq(a, b) {
		return a
	}
	return b
}
