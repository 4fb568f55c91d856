// SPDX-License-Identifier: MIT

package poly_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertClose checks got against want element by element within tol.
func assertClose(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return
	}
	for i := range want {
		assert.LessOrEqual(t, cmplx.Abs(want[i]-got[i]), tol, "root %d: want %v, got %v", i, want[i], got[i])
	}
}

// horner evaluates complex coefficients, highest power first.
func horner(coeffs []complex128, x complex128) complex128 {
	var acc complex128
	for _, c := range coeffs {
		acc = acc*x + c
	}

	return acc
}

// assertResidual checks that every root nearly annuls the polynomial.
func assertResidual(t *testing.T, coeffs, roots []complex128, tol float64) {
	t.Helper()
	for i, r := range roots {
		assert.LessOrEqual(t, cmplx.Abs(horner(coeffs, r)), tol, "root %d = %v", i, r)
	}
}

func c(re float64) complex128 { return complex(re, 0) }
