package core

import "math"

// Float64Ops is the Ops bundle for float64 elements.
type Float64Ops struct{}

// Float64MaxElement keeps the square of any admissible difference finite.
const Float64MaxElement = 1e150

func (Float64Ops) Zero() float64       { return 0 }
func (Float64Ops) One() float64        { return 1 }
func (Float64Ops) MaxElement() float64 { return Float64MaxElement }

func (Float64Ops) Add(a, b float64) float64 { return a + b }
func (Float64Ops) Sub(a, b float64) float64 { return a - b }
func (Float64Ops) Mul(a, b float64) float64 { return a * b }
func (Float64Ops) Div(a, b float64) float64 { return a / b }
func (Float64Ops) Abs(a float64) float64    { return math.Abs(a) }

func (Float64Ops) LessEq(a, b float64) bool    { return a <= b }
func (Float64Ops) GreaterEq(a, b float64) bool { return a >= b }
func (Float64Ops) Equal(a, b float64) bool     { return a == b }

func (Float64Ops) Sqrt(a float64) float64        { return math.Sqrt(a) }
func (Float64Ops) Pow(base, exp float64) float64 { return math.Pow(base, exp) }
func (Float64Ops) Exp(a float64) float64         { return math.Exp(a) }
func (Float64Ops) Log(a float64) float64         { return math.Log(a) }

// Float32Ops is the Ops bundle for float32 elements. Transcendental functions
// are evaluated in float64 and rounded back.
type Float32Ops struct{}

// Float32MaxElement keeps the square of any admissible difference finite.
const Float32MaxElement = 1e15

func (Float32Ops) Zero() float32       { return 0 }
func (Float32Ops) One() float32        { return 1 }
func (Float32Ops) MaxElement() float32 { return Float32MaxElement }

func (Float32Ops) Add(a, b float32) float32 { return a + b }
func (Float32Ops) Sub(a, b float32) float32 { return a - b }
func (Float32Ops) Mul(a, b float32) float32 { return a * b }
func (Float32Ops) Div(a, b float32) float32 { return a / b }
func (Float32Ops) Abs(a float32) float32 {
	return math.Float32frombits(math.Float32bits(a) &^ (1 << 31))
}

func (Float32Ops) LessEq(a, b float32) bool    { return a <= b }
func (Float32Ops) GreaterEq(a, b float32) bool { return a >= b }
func (Float32Ops) Equal(a, b float32) bool     { return a == b }

func (Float32Ops) Sqrt(a float32) float32 { return float32(math.Sqrt(float64(a))) }
func (Float32Ops) Pow(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
func (Float32Ops) Exp(a float32) float32 { return float32(math.Exp(float64(a))) }
func (Float32Ops) Log(a float32) float32 { return float32(math.Log(float64(a))) }
