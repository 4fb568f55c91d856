// SPDX-License-Identifier: MIT

package poly_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroot/poly"
)

func TestQuadraticEquation(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c complex128
		want    []complex128
		tol     float64
	}{
		{"distinct real", 1, 4, -21, []complex128{-7, 3}, 0},
		{"b zero", 1, 0, -2, []complex128{c(-math.Sqrt2), c(math.Sqrt2)}, 1e-15},
		{"pure imaginary", 1, 0, 2, []complex128{complex(0, -math.Sqrt2), complex(0, math.Sqrt2)}, 1e-15},
		{"zero root", 1, -1, 0, []complex128{0, 1}, 0},
		{"conjugate pair", 1, -4, 5, []complex128{2 - 1i, 2 + 1i}, 1e-15},
		{"double zero", 3, 0, 0, []complex128{0, 0}, 0},
		{"complex coefficients", 1, 3 - 3i, 10 - 54i, []complex128{3 + 7i, -6 - 4i}, 1e-13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := poly.QuadraticEquation(tc.a, tc.b, tc.c)
			require.NoError(t, err)
			assertClose(t, tc.want, r[:], tc.tol)
		})
	}
}

func TestQuadraticEquation_NoCancellation(t *testing.T) {
	// Roots 1e-8 and 1e8: the textbook formula loses the small one entirely.
	r, err := poly.QuadraticEquation(1, -(1e8 + 1e-8), 1)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-8, real(r[0]), 1e-14)
	assert.InEpsilon(t, 1e8, real(r[1]), 1e-14)
}

func TestQuadraticEquation_Vieta(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	draw := func() float64 { return rng.Float64()*20 - 10 }

	// x1+x2 = -b/a and x1·x2 = c/a for real and complex coefficients alike.
	check := func(a, b, cc complex128) {
		t.Helper()
		r, err := poly.QuadraticEquation(a, b, cc, poly.WithAdjust(false))
		require.NoError(t, err)
		p, q := b/a, cc/a
		scale := 1 + cmplx.Abs(p)*cmplx.Abs(p) + cmplx.Abs(q)
		assert.LessOrEqual(t, cmplx.Abs(r[0]+r[1]+p), 1e-12*scale, "sum, a=%v b=%v c=%v", a, b, cc)
		assert.LessOrEqual(t, cmplx.Abs(r[0]*r[1]-q), 1e-12*scale, "product, a=%v b=%v c=%v", a, b, cc)
	}
	for i := 0; i < 500; i++ {
		a, b, cc := draw(), draw(), draw()
		if a != 0 {
			check(c(a), c(b), c(cc))
		}

		ca := complex(draw(), draw())
		if ca != 0 {
			check(ca, complex(draw(), draw()), complex(draw(), draw()))
		}
	}
}

func TestCubicEquation(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d complex128
		want       []complex128
		tol        float64
	}{
		{"three real", 1, -6, 11, -6, []complex128{3, 1, 2}, 1e-14},
		{"one real", 1, -1, 1, -1, []complex128{1, 1i, -1i}, 1e-14},
		{"triple", 1, -3, 3, -1, []complex128{1, 1, 1}, 0},
		{"all zero", 1, 0, 0, 0, []complex128{0, 0, 0}, 0},
		{"non-monic pure cube", 2, 0, 0, 16, []complex128{complex(1, math.Sqrt(3)), -2, complex(1, -math.Sqrt(3))}, 1e-14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := poly.CubicEquation(tc.a, tc.b, tc.c, tc.d)
			require.NoError(t, err)
			assertClose(t, tc.want, r[:], tc.tol)
			assertResidual(t, []complex128{tc.a, tc.b, tc.c, tc.d}, r[:], 1e-12)
		})
	}
}

func TestCubicEquation_SnapsToAxis(t *testing.T) {
	r, err := poly.CubicEquation(1, -6, 11, -6)
	require.NoError(t, err)
	for i, x := range r {
		assert.Zero(t, imag(x), "root %d", i)
	}
}

func TestCubicEquation_UnitRoots(t *testing.T) {
	eps := 0.99 * poly.DefaultEpsilon

	r, err := poly.CubicEquation(1, 0, 0, -1)
	require.NoError(t, err)
	for _, x := range r {
		assert.InDelta(t, 1.0, real(poly.Pound(x*x*x, true, eps)), 1e-14)
	}

	r, err = poly.CubicEquation(1, 0, 0, 1)
	require.NoError(t, err)
	for _, x := range r {
		assert.LessOrEqual(t, cmplx.Abs(x*x*x+1), 1e-14)
	}
}

func TestQuarticEquation(t *testing.T) {
	cases := []struct {
		name          string
		a, b, c, d, e complex128
		want          []complex128
		tol           float64
	}{
		{"four real", 1, -10, 35, -50, 24, []complex128{1, 2, 3, 4}, 1e-14},
		{"two real", 1, -1, 1, -1, 0, []complex128{1i, -1i, 0, 1}, 1e-14},
		{"quadruple", 1, -4, 6, -4, 1, []complex128{1, 1, 1, 1}, 0},
		{"biquadratic", 1, 0, -5, 0, 4, []complex128{-2, -1, 1, 2}, 1e-14},
		{"all zero", 1, 0, 0, 0, 0, []complex128{0, 0, 0, 0}, 0},
		{"fourth roots of 16", 1, 0, 0, 0, -16, []complex128{2, 2i, -2, -2i}, 1e-14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := poly.QuarticEquation(tc.a, tc.b, tc.c, tc.d, tc.e)
			require.NoError(t, err)
			assertClose(t, tc.want, r[:], tc.tol)
			assertResidual(t, []complex128{tc.a, tc.b, tc.c, tc.d, tc.e}, r[:], 1e-11)
		})
	}
}

func TestQuarticEquation_UnitRoots(t *testing.T) {
	eps := 0.99 * poly.DefaultEpsilon

	r, err := poly.QuarticEquation(1, 0, 0, 0, -1)
	require.NoError(t, err)
	for _, x := range r {
		assert.LessOrEqual(t, cmplx.Abs(x*x*x*x-1), 1e-14)
	}

	r, err = poly.QuarticEquation(1, 0, 0, 0, 1)
	require.NoError(t, err)
	for _, x := range r {
		assert.InDelta(t, -1.0, real(poly.Pound(x*x*x*x, true, eps)), 1e-14)
	}
}

func TestEquations_ZeroLeading(t *testing.T) {
	_, err := poly.QuadraticEquation(0, 1, 1)
	assert.ErrorIs(t, err, poly.ErrZeroLeading)
	_, err = poly.CubicEquation(0, 1, 1, 1)
	assert.ErrorIs(t, err, poly.ErrZeroLeading)
	_, err = poly.QuarticEquation(0, 1, 1, 1, 1)
	assert.ErrorIs(t, err, poly.ErrZeroLeading)
}

func TestEquations_ForceReal(t *testing.T) {
	r, err := poly.CubicEquation(1, -1, 1, -1, poly.WithForceReal())
	require.NoError(t, err)
	for i, x := range r {
		assert.Zero(t, imag(x), "root %d", i)
	}
	assert.InDelta(t, 1.0, real(r[0]), 1e-14)
	assert.InDelta(t, 0.0, real(r[1]), 1e-14, "±i flattens onto 0")
}

func TestEquations_NoAdjustKeepsResidue(t *testing.T) {
	adj, err := poly.QuadraticEquation(1, 3-3i, 10-54i)
	require.NoError(t, err)
	raw, err := poly.QuadraticEquation(1, 3-3i, 10-54i, poly.WithAdjust(false))
	require.NoError(t, err)
	assert.Equal(t, adj, raw, "genuine complex roots are never snapped")
}
