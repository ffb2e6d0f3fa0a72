package core

import "math"

// Int64MaxElement keeps squares of admissible differences below 2^40, so
// sums over vectors of up to 2^22 components cannot overflow.
const Int64MaxElement = 1 << 20

// Int64Ops is the Ops bundle for int64 elements. Div truncates toward zero,
// Sqrt is the floor root, and Pow, Exp and Log round to the nearest integer
// and panic with ErrElementBound when the result does not fit.
type Int64Ops struct{}

func (Int64Ops) Zero() int64       { return 0 }
func (Int64Ops) One() int64        { return 1 }
func (Int64Ops) MaxElement() int64 { return Int64MaxElement }

func (Int64Ops) Add(a, b int64) int64 { return a + b }
func (Int64Ops) Sub(a, b int64) int64 { return a - b }
func (Int64Ops) Mul(a, b int64) int64 { return a * b }
func (Int64Ops) Div(a, b int64) int64 { return a / b }

func (Int64Ops) Abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func (Int64Ops) LessEq(a, b int64) bool    { return a <= b }
func (Int64Ops) GreaterEq(a, b int64) bool { return a >= b }
func (Int64Ops) Equal(a, b int64) bool     { return a == b }

// Sqrt returns the largest r with r*r <= a, or zero for a <= 0.
func (Int64Ops) Sqrt(a int64) int64 {
	if a <= 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(a)))
	for r*r > a {
		r--
	}
	for (r+1)*(r+1) <= a {
		r++
	}
	return r
}

func (Int64Ops) Pow(base, exp int64) int64 {
	return roundInt64(math.Pow(float64(base), float64(exp)))
}

func (Int64Ops) Exp(a int64) int64 { return roundInt64(math.Exp(float64(a))) }
func (Int64Ops) Log(a int64) int64 { return roundInt64(math.Log(float64(a))) }

// roundInt64 rounds f to the nearest int64, panicking with ErrElementBound
// when f is NaN or out of range.
func roundInt64(f float64) int64 {
	r := math.Round(f)
	if !(math.Abs(r) < math.MaxInt64) {
		Require(Violation(ErrElementBound, "%g not representable as int64", f))
	}
	return int64(r)
}
