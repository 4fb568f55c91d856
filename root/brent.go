// SPDX-License-Identifier: MIT

package root

import (
	"fmt"

	"github.com/katalvlaran/lvroot/numeric"
)

// Brent finds a root bracketed by [x1, x2] with Brent's method (zbrent).
//
// Three points are tracked: b is the best estimate, a the previous one, and
// c the point that keeps [b, c] bracketing the root. Each step tries inverse
// quadratic interpolation (secant when only two distinct values exist) and
// falls back to bisection when the step would leave the bracket or when the
// last two steps shrank too slowly.
//
// Stops when |(c-b)/2| <= 2·EPS·|b| + tol/2 or f(b) == 0, where EPS is the
// backend's rounding unit (numeric.Arith.Epsilon). tol is absolute.
//
// Default tolerance: DefaultBrentTol; default cap: DefaultMaxIter.
func (s Solver[T]) Brent(f Func[T], x1, x2 T) (Result[T], error) {
	if f == nil {
		return Result[T]{}, ErrNilFunc
	}
	tol, err := s.tolerance(DefaultBrentTol)
	if err != nil {
		return Result[T]{}, err
	}
	ar := s.ar

	a, b, c := x1, x2, x2
	fa, fb := f(a), f(b)
	fc := fb
	if !numeric.Straddles(ar, fa, fb) {
		return Result[T]{}, fmt.Errorf("%w: f(%v)=%v, f(%v)=%v", ErrNotBracketed, x1, fa, x2, fb)
	}

	var (
		half, one = s.lit("0.5"), s.lit("1")
		two, three = s.lit("2"), s.lit("3")
		eps        = ar.Epsilon()
		d, e       T
		maxit      = s.maxIter(DefaultMaxIter)
	)
	for i := 1; i <= maxit; i++ {
		if numeric.Same(ar, fb, fc) {
			c, fc = a, fa
			d = ar.Sub(b, a)
			e = d
		}
		if ar.Cmp(ar.Abs(fc), ar.Abs(fb)) < 0 {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := ar.Add(ar.Mul(ar.Mul(two, eps), ar.Abs(b)), ar.Mul(half, tol))
		xm := ar.Mul(half, ar.Sub(c, b))
		if ar.Cmp(ar.Abs(xm), tol1) <= 0 || numeric.IsZero(ar, fb) {
			return Result[T]{Root: b, Iterations: i}, nil
		}

		if ar.Cmp(ar.Abs(e), tol1) >= 0 && ar.Cmp(ar.Abs(fa), ar.Abs(fb)) > 0 {
			var p, q T
			sr := ar.Quo(fb, fa)
			if ar.Cmp(a, c) == 0 {
				// Linear interpolation.
				p = ar.Mul(ar.Mul(two, xm), sr)
				q = ar.Sub(one, sr)
			} else {
				// Inverse quadratic interpolation.
				qq, r := ar.Quo(fa, fc), ar.Quo(fb, fc)
				p = ar.Mul(sr, ar.Sub(
					ar.Mul(ar.Mul(ar.Mul(two, xm), qq), ar.Sub(qq, r)),
					ar.Mul(ar.Sub(b, a), ar.Sub(r, one)),
				))
				q = ar.Mul(ar.Mul(ar.Sub(qq, one), ar.Sub(r, one)), ar.Sub(sr, one))
			}
			if ar.Sign(p) == 1 {
				q = ar.Neg(q)
			}
			p = ar.Abs(p)
			min1 := ar.Sub(ar.Mul(ar.Mul(three, xm), q), ar.Abs(ar.Mul(tol1, q)))
			min2 := ar.Abs(ar.Mul(e, q))
			lim := min1
			if ar.Cmp(min2, min1) < 0 {
				lim = min2
			}
			if ar.Cmp(ar.Mul(two, p), lim) < 0 {
				e = d // accept interpolation
				d = ar.Quo(p, q)
			} else {
				d = xm // interpolation failed, bisect
				e = d
			}
		} else {
			d = xm // bounds decreasing too slowly, bisect
			e = d
		}

		a, fa = b, fb
		if ar.Cmp(ar.Abs(d), tol1) > 0 {
			b = ar.Add(b, d)
		} else if ar.Sign(xm) >= 0 {
			b = ar.Add(b, tol1)
		} else {
			b = ar.Sub(b, tol1)
		}
		fb = f(b)
		s.trace("brent", i, b)
	}

	return Result[T]{}, fmt.Errorf("%w: Brent after %d iterations", ErrTooManyIterations, maxit)
}
