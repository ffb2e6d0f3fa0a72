package core

import (
	"math"
	"math/bits"
	"strconv"
)

// FixedFracBits is the number of fractional bits of a Fixed value.
const FixedFracBits = 16

// Fixed is a signed Q47.16 fixed-point number stored in an int64.
type Fixed int64

const fixedOne Fixed = 1 << FixedFracBits

// FixedMaxElement is the largest magnitude FixedOps admits for intermediates.
// Squares of admissible differences stay below 2^44 raw units, which leaves
// headroom for summing millions of terms.
const FixedMaxElement Fixed = 16384 << FixedFracBits

// FixedFromInt converts an integer to Fixed.
func FixedFromInt(n int64) Fixed {
	return Fixed(n << FixedFracBits)
}

// FixedFromFloat converts f to the nearest Fixed value. It panics with
// ErrElementBound if f is NaN or outside the Q47.16 range.
func FixedFromFloat(f float64) Fixed {
	raw := math.Round(f * float64(fixedOne))
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if !(math.Abs(raw) < math.MaxInt64) {
		Require(Violation(ErrElementBound, "%g not representable as Fixed", f))
	}
	return Fixed(raw)
}

// Float64 returns f as a float64.
func (f Fixed) Float64() float64 {
	return float64(f) / float64(fixedOne)
}

func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float64(), 'f', -1, 64)
}

// FixedOps is the Ops bundle for Fixed elements. Multiplication and division
// use 128-bit intermediates and truncate toward zero. Sqrt is an exact
// integer root; Pow, Exp and Log are evaluated in float64 and rounded, and
// panic with ErrElementBound when the result does not fit.
type FixedOps struct{}

func (FixedOps) Zero() Fixed       { return 0 }
func (FixedOps) One() Fixed        { return fixedOne }
func (FixedOps) MaxElement() Fixed { return FixedMaxElement }

func (FixedOps) Add(a, b Fixed) Fixed { return a + b }
func (FixedOps) Sub(a, b Fixed) Fixed { return a - b }

func (FixedOps) Mul(a, b Fixed) Fixed {
	ua, na := magnitude(a)
	ub, nb := magnitude(b)
	hi, lo := bits.Mul64(ua, ub)
	r := Fixed(hi<<(64-FixedFracBits) | lo>>FixedFracBits)
	if na != nb {
		return -r
	}
	return r
}

// Div panics on a zero divisor, like integer division.
func (FixedOps) Div(a, b Fixed) Fixed {
	ua, na := magnitude(a)
	ub, nb := magnitude(b)
	if ub == 0 {
		panic("core: fixed-point division by zero")
	}
	q, _ := bits.Div64(ua>>(64-FixedFracBits), ua<<FixedFracBits, ub)
	r := Fixed(q)
	if na != nb {
		return -r
	}
	return r
}

func (FixedOps) Abs(a Fixed) Fixed {
	if a < 0 {
		return -a
	}
	return a
}

func (FixedOps) LessEq(a, b Fixed) bool    { return a <= b }
func (FixedOps) GreaterEq(a, b Fixed) bool { return a >= b }
func (FixedOps) Equal(a, b Fixed) bool     { return a == b }

// Sqrt returns the largest r with r*r <= a in raw units, or zero for a <= 0.
func (FixedOps) Sqrt(a Fixed) Fixed {
	if a <= 0 {
		return 0
	}
	// The root of a·2^16 in raw units is the fixed-point root of a.
	hi, lo := uint64(a)>>(64-FixedFracBits), uint64(a)<<FixedFracBits
	r := uint64(math.Sqrt(float64(a) * float64(fixedOne)))
	for r > 0 {
		sh, sl := square128(r)
		if !greater128(sh, sl, hi, lo) {
			break
		}
		r--
	}
	for {
		nh, nl := square128(r + 1)
		if greater128(nh, nl, hi, lo) {
			break
		}
		r++
	}
	return Fixed(r)
}

func (FixedOps) Pow(base, exp Fixed) Fixed {
	return FixedFromFloat(math.Pow(base.Float64(), exp.Float64()))
}

func (FixedOps) Exp(a Fixed) Fixed { return FixedFromFloat(math.Exp(a.Float64())) }
func (FixedOps) Log(a Fixed) Fixed { return FixedFromFloat(math.Log(a.Float64())) }

func magnitude(a Fixed) (uint64, bool) {
	if a < 0 {
		return uint64(-a), true
	}
	return uint64(a), false
}

func square128(r uint64) (hi, lo uint64) {
	return bits.Mul64(r, r)
}

func greater128(ahi, alo, bhi, blo uint64) bool {
	return ahi > bhi || (ahi == bhi && alo > blo)
}
