// SPDX-License-Identifier: MIT

package root

import (
	"fmt"

	"github.com/katalvlaran/lvroot/numeric"
)

// Bisection refines a root bracketed by [x1, x2] by repeated halving.
//
// Algorithm:
//  1. If f(x1) or f(x2) is exactly zero, return that endpoint with 0 iterations.
//  2. Reject same-sign endpoints (ErrNotBracketed).
//  3. Perform exactly ceil(log2(|x2-x1|/tol)) halvings, keeping the half whose
//     endpoints still differ in sign; stop early on an exact zero.
//  4. Return the midpoint of the final interval.
//
// Bisection never returns ErrTooManyIterations: its iteration count is fixed.
// With WithSwitch it returns ErrSingularity when the midpoint |f| grows past
// both endpoint values, which flags a pole but can misfire on steep functions.
//
// Default tolerance: DefaultBisectionTol.
func (s Solver[T]) Bisection(f Func[T], x1, x2 T) (Result[T], error) {
	if f == nil {
		return Result[T]{}, ErrNilFunc
	}
	tol, err := s.tolerance(DefaultBisectionTol)
	if err != nil {
		return Result[T]{}, err
	}
	ar := s.ar

	f1, f2 := f(x1), f(x2)
	if numeric.IsZero(ar, f1) {
		return Result[T]{Root: x1}, nil
	}
	if numeric.IsZero(ar, f2) {
		return Result[T]{Root: x2}, nil
	}
	if !numeric.Straddles(ar, f1, f2) {
		return Result[T]{}, fmt.Errorf("%w: f(%v)=%v, f(%v)=%v", ErrNotBracketed, x1, f1, x2, f2)
	}

	n := halvings(ar, ar.Abs(ar.Sub(x2, x1)), tol)

	half := s.lit("0.5")
	for i := 0; i < n; i++ {
		x3 := ar.Mul(half, ar.Add(x1, x2))
		f3 := f(x3)
		s.trace("bisection", i+1, x3)
		if numeric.IsZero(ar, f3) {
			return Result[T]{Root: x3, Iterations: i + 1}, nil
		}
		if s.opts.check {
			a3 := ar.Abs(f3)
			if ar.Cmp(a3, ar.Abs(f1)) > 0 && ar.Cmp(a3, ar.Abs(f2)) > 0 {
				return Result[T]{}, fmt.Errorf("%w: |f(%v)|=%v", ErrSingularity, x3, a3)
			}
		}
		if numeric.Opposite(ar, f2, f3) {
			x1, f1 = x3, f3 // root in the right half
		} else {
			x2, f2 = x3, f3 // root in the left half
		}
	}

	return Result[T]{Root: ar.Mul(half, ar.Add(x1, x2)), Iterations: n}, nil
}

// Ridders refines a root bracketed by [a, b] with Ridders' exponential
// false-position update. Each iteration evaluates f twice and the order of
// convergence is sqrt(2).
//
// Per iteration:
//
//	c  = (a+b)/2
//	s  = sqrt(fc² - fa·fb)                 (s == 0: c is the root, or ErrNoRoot)
//	x  = c + sign(fa-fb)·(c-a)·fc/s
//	re-bracket with whichever of (a,c,x) / (c,b,x) still changes sign
//
// Converged once |x - x_prev| < tol·max(|x|, 1) from the second iteration on.
//
// Default tolerance: DefaultRiddersTol; default cap: DefaultMaxIter.
func (s Solver[T]) Ridders(f Func[T], a, b T) (Result[T], error) {
	if f == nil {
		return Result[T]{}, ErrNilFunc
	}
	tol, err := s.tolerance(DefaultRiddersTol)
	if err != nil {
		return Result[T]{}, err
	}
	ar := s.ar

	fa, fb := f(a), f(b)
	if numeric.IsZero(ar, fa) {
		return Result[T]{Root: a}, nil
	}
	if numeric.IsZero(ar, fb) {
		return Result[T]{Root: b}, nil
	}
	if !numeric.Straddles(ar, fa, fb) {
		return Result[T]{}, fmt.Errorf("%w: f(%v)=%v, f(%v)=%v", ErrNotBracketed, a, fa, b, fb)
	}

	half, one := s.lit("0.5"), s.lit("1")
	maxit := s.maxIter(DefaultMaxIter)
	var xOld T
	for i := 0; i < maxit; i++ {
		c := ar.Mul(half, ar.Add(a, b))
		fc := f(c)
		sq := ar.Sqrt(ar.Sub(ar.Mul(fc, fc), ar.Mul(fa, fb)))
		if numeric.IsZero(ar, sq) {
			if numeric.IsZero(ar, fc) {
				return Result[T]{Root: c, Iterations: i + 1}, nil
			}

			return Result[T]{}, fmt.Errorf("%w: degenerate step at x=%v", ErrNoRoot, c)
		}
		dx := ar.Quo(ar.Mul(ar.Sub(c, a), fc), sq)
		if ar.Cmp(fa, fb) < 0 {
			dx = ar.Neg(dx)
		}
		x := ar.Add(c, dx)
		fx := f(x)
		s.trace("ridders", i+1, x)

		if i > 0 && ar.Cmp(ar.Abs(ar.Sub(x, xOld)), ar.Mul(tol, numeric.Max(ar, ar.Abs(x), one))) < 0 {
			return Result[T]{Root: x, Iterations: i + 1}, nil
		}
		xOld = x

		// Re-bracket as tightly as possible.
		if numeric.Same(ar, fc, fx) {
			if numeric.Opposite(ar, fa, fx) {
				b, fb = x, fx
			} else {
				a, fa = x, fx
			}
		} else {
			a, b, fa, fb = c, x, fc, fx
		}
	}

	return Result[T]{}, fmt.Errorf("%w: Ridders after %d iterations", ErrTooManyIterations, maxit)
}
