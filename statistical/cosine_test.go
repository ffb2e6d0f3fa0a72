package statistical

import (
	"math"
	"math/rand"
	"testing"

	"github.com/patrikhermansson/gometric/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, target)
	}()
	fn()
}

func TestCosine(t *testing.T) {
	ops := core.Float64Ops{}
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"HalfAngle", []float64{1, 0}, []float64{1, 1}, 0.707107},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"Scaled", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"Orthogonal", []float64{1, 0, 0, 1, 0, 1}, []float64{0, 1, 1, 0, 1, 0}, 0},
		{"Opposite", []float64{1, -2}, []float64{-1, 2}, -1},
		{"Reversed", []float64{1, 2, 3, 4, 5, 6}, []float64{6, 5, 4, 3, 2, 1}, 56.0 / 91.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(ops, tt.a, tt.b), 1e-4)
			assert.InDelta(t, tt.expected, Cosine(ops, tt.b, tt.a), 1e-4)
		})
	}
}

func TestCosineRepresentations(t *testing.T) {
	t.Run("Float32", func(t *testing.T) {
		got := Cosine(core.Float32Ops{}, []float32{1, 0}, []float32{1, 1})
		assert.InDelta(t, 0.707107, got, 1e-4)
	})

	t.Run("Fixed", func(t *testing.T) {
		one := core.FixedFromInt(1)
		got := Cosine(core.FixedOps{}, []core.Fixed{one, 0}, []core.Fixed{one, one})
		assert.InDelta(t, 0.707107, got.Float64(), 1e-4)
	})
}

func TestCosinePreconditions(t *testing.T) {
	ops := core.Float64Ops{}
	quarter := core.Quarter(ops, ops.MaxElement())

	requirePanicsIs(t, core.ErrEmptyVector, func() { Cosine(ops, nil, []float64{1}) })
	requirePanicsIs(t, core.ErrLengthMismatch, func() { Cosine(ops, []float64{1}, []float64{1, 2}) })
	requirePanicsIs(t, core.ErrZeroVector, func() { Cosine(ops, []float64{0, 0}, []float64{1, 2}) })
	requirePanicsIs(t, core.ErrZeroVector, func() { Cosine(ops, []float64{1, 2}, []float64{0, 0}) })
	requirePanicsIs(t, core.ErrElementBound, func() { Cosine(ops, []float64{quarter * 2}, []float64{1}) })
	// Negative components are admitted, unlike Canberra's non-negative domain;
	// only the magnitude is bounded by MaxElement/4.
	assert.NotPanics(t, func() { Cosine(ops, []float64{quarter}, []float64{-quarter}) })
	assert.NoError(t, Validate(ops, []float64{-1, -2}, []float64{3, -4}))
	requirePanicsIs(t, core.ErrElementBound, func() { Cosine(ops, []float64{-quarter * 2}, []float64{1}) })

	assert.NoError(t, Validate(ops, []float64{1}, []float64{2}))
	assert.ErrorIs(t, Validate(ops, []float64{0}, []float64{2}), core.ErrZeroVector)
}

// TestCosineUnclamped documents that the ratio is not clamped: rounding may
// place a parallel pair marginally outside [-1, 1], but never by more than a
// few ulps.
func TestCosineUnclamped(t *testing.T) {
	ops := core.Float64Ops{}
	rng := rand.New(rand.NewSource(core.GetSeed()))

	for iter := 0; iter < 500; iter++ {
		n := 1 + rng.Intn(32)
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = rng.NormFloat64() * 1e3
			b[i] = a[i] * 3
		}
		if core.CheckNonZero(ops, "a", a) != nil {
			continue
		}
		got := Cosine(ops, a, b)
		require.InDelta(t, 1.0, got, 1e-12)

		c := make([]float64, n)
		for i := range c {
			c[i] = rng.NormFloat64()
		}
		if core.CheckNonZero(ops, "c", c) != nil {
			continue
		}
		s := Cosine(ops, a, c)
		require.LessOrEqual(t, math.Abs(s), 1+1e-12)
		require.InDelta(t, s, Cosine(ops, c, a), 1e-12)
	}
}

func TestDotAndNorm(t *testing.T) {
	ops := core.Float64Ops{}

	assert.Equal(t, 32.0, Dot(ops, []float64{1, 2, 3}, []float64{4, 5, 6}))
	assert.Equal(t, -4.0, Dot(ops, []float64{1, -1, 2}, []float64{1, 1, -2}))
	assert.Equal(t, 25.0, SquaredNorm(ops, []float64{3, 4}))
	assert.Equal(t, int64(14), SquaredNorm(core.Int64Ops{}, []int64{1, 2, 3}))

	requirePanicsIs(t, core.ErrEmptyVector, func() { SquaredNorm(ops, nil) })
	requirePanicsIs(t, core.ErrLengthMismatch, func() { Dot(ops, []float64{1}, nil) })
}

func TestNormalizeInPlace(t *testing.T) {
	ops := core.Float64Ops{}

	v := []float64{3, 4}
	require.True(t, NormalizeInPlace(ops, v))
	assert.InDelta(t, 0.6, v[0], 1e-12)
	assert.InDelta(t, 0.8, v[1], 1e-12)
	assert.InDelta(t, 1.0, SquaredNorm(ops, v), 1e-12)

	zero := []float64{0, 0}
	assert.False(t, NormalizeInPlace(ops, zero))
	assert.Equal(t, []float64{0, 0}, zero)

	assert.False(t, NormalizeInPlace(ops, []float64{}))

	f := []core.Fixed{core.FixedFromInt(3), core.FixedFromInt(4)}
	require.True(t, NormalizeInPlace(core.FixedOps{}, f))
	assert.InDelta(t, 0.6, f[0].Float64(), 1e-4)
	assert.InDelta(t, 0.8, f[1].Float64(), 1e-4)
}

func TestNoAllocations(t *testing.T) {
	ops := core.Float64Ops{}
	a := []float64{1, 2, 3, 4}
	b := []float64{4, 3, 2, 1}

	allocs := testing.AllocsPerRun(100, func() {
		_ = Cosine(ops, a, b)
		_ = Dot(ops, a, b)
	})
	assert.Zero(t, allocs)
}
