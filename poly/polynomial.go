// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvroot/numeric"
)

// Polynomial is a real polynomial with coefficients in T, highest power
// first: c[0]·xⁿ + c[1]·xⁿ⁻¹ + … + c[n]. Leading zeros are dropped on
// construction; the zero polynomial keeps a single 0 coefficient.
type Polynomial[T any] struct {
	ar numeric.Arith[T]
	c  []T
}

// NewPolynomial builds a polynomial from coefficients, highest power first.
func NewPolynomial[T any](ar numeric.Arith[T], coeffs ...T) (Polynomial[T], error) {
	if len(coeffs) == 0 {
		return Polynomial[T]{}, ErrEmptyPolynomial
	}
	i := 0
	for i < len(coeffs)-1 && ar.Sign(coeffs[i]) == 0 {
		i++
	}
	c := make([]T, len(coeffs)-i)
	copy(c, coeffs[i:])

	return Polynomial[T]{ar: ar, c: c}, nil
}

// ParsePolynomial parses decimal literals with the backend, so "0.1" stays
// exact under numeric.Decimal or numeric.Rat.
func ParsePolynomial[T any](ar numeric.Arith[T], lits ...string) (Polynomial[T], error) {
	coeffs := make([]T, len(lits))
	for i, s := range lits {
		v, err := ar.Parse(s)
		if err != nil {
			return Polynomial[T]{}, fmt.Errorf("poly: coefficient %d: %w", i, err)
		}
		coeffs[i] = v
	}

	return NewPolynomial(ar, coeffs...)
}

// Degree returns n for c[0]·xⁿ + …; the zero polynomial has degree 0.
func (p Polynomial[T]) Degree() int { return len(p.c) - 1 }

// Coefficients returns a copy of the coefficients, highest power first.
func (p Polynomial[T]) Coefficients() []T {
	return append([]T(nil), p.c...)
}

// Eval evaluates the polynomial at x with Horner's rule. The method value
// p.Eval satisfies root.Func[T].
func (p Polynomial[T]) Eval(x T) T {
	acc := p.c[0]
	for _, c := range p.c[1:] {
		acc = p.ar.Add(p.ar.Mul(acc, x), c)
	}

	return acc
}

// Derivative returns dp/dx.
func (p Polynomial[T]) Derivative() Polynomial[T] {
	n := p.Degree()
	if n == 0 {
		return Polynomial[T]{ar: p.ar, c: []T{p.ar.FromFloat(0)}}
	}
	d := make([]T, n)
	for i := 0; i < n; i++ {
		k := numeric.MustParse(p.ar, strconv.Itoa(n-i))
		d[i] = p.ar.Mul(p.c[i], k)
	}

	return Polynomial[T]{ar: p.ar, c: d}
}

// Complex returns the coefficients as complex128 for the closed-form solvers.
func (p Polynomial[T]) Complex() []complex128 {
	out := make([]complex128, len(p.c))
	for i, c := range p.c {
		out[i] = complex(p.ar.Float64(c), 0)
	}

	return out
}

// Solve dispatches a degree 2..4 polynomial to the matching closed form.
func Solve(coeffs []complex128, opts ...Option) ([]complex128, error) {
	switch len(coeffs) {
	case 3:
		r, err := QuadraticEquation(coeffs[0], coeffs[1], coeffs[2], opts...)

		return r[:], err
	case 4:
		r, err := CubicEquation(coeffs[0], coeffs[1], coeffs[2], coeffs[3], opts...)

		return r[:], err
	case 5:
		r, err := QuarticEquation(coeffs[0], coeffs[1], coeffs[2], coeffs[3], coeffs[4], opts...)

		return r[:], err
	default:
		return nil, fmt.Errorf("poly: closed form needs degree 2..4, got %d coefficients", len(coeffs))
	}
}
