// SPDX-License-Identifier: MIT

package root

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroot/numeric"
)

// RootFinder refines a root bracketed by [x0, x2] (x0 < x2) with Jack
// Crenshaw's inverse parabolic interpolation ("All Problems Are Simple",
// Embedded Systems Programming, May 2002). The method is 4th order.
//
// Each iteration:
//  1. x1 = (x0+x2)/2; stop if f(x1) == 0 or |x1-x0| < eps.
//  2. Swap ends so that y0 and y1 differ in sign.
//  3. If y2·(y2-y0) < 2·y1·(y1-y0) the parabola is unreliable: x2 = x1.
//  4. Otherwise fit x as a parabola in y through the three points,
//     b = (x1-x0)/(y1-y0), c = ((y1-y0)-(y2-y1))/((y2-y1)(y2-y0)),
//     xm = x0 - b·y0·(1 - c·y1); stop if f(xm) == 0 or |xm - xm_prev| < eps,
//     else keep whichever pair of points still brackets the root.
//
// Default eps: DefaultEpsilon; default cap: DefaultMaxIter.
//
// Errors: ErrNilFunc, ErrBadInterval (x0 >= x2), ErrBadTolerance,
// ErrNotBracketed, ErrTooManyIterations.
func (s Solver[T]) RootFinder(f Func[T], x0, x2 T) (Result[T], error) {
	eps, err := s.finderPreflight(f, x0, x2)
	if err != nil {
		return Result[T]{}, err
	}

	return s.rootFinder(f, x0, x2, eps, s.maxIter(DefaultMaxIter))
}

func (s Solver[T]) finderPreflight(f Func[T], x0, x2 T) (T, error) {
	var zero T
	if f == nil {
		return zero, ErrNilFunc
	}
	if s.ar.Cmp(x0, x2) >= 0 {
		return zero, fmt.Errorf("%w: need x0 < x2, got [%v, %v]", ErrBadInterval, x0, x2)
	}

	return s.tolerance(DefaultEpsilon)
}

func (s Solver[T]) rootFinder(f Func[T], x0, x2, eps T, maxit int) (Result[T], error) {
	ar := s.ar
	half, one, two := s.lit("0.5"), s.lit("1"), s.lit("2")

	y0, y2 := f(x0), f(x2)
	if numeric.IsZero(ar, y0) {
		return Result[T]{Root: x0}, nil
	}
	if numeric.IsZero(ar, y2) {
		return Result[T]{Root: x2}, nil
	}
	if !numeric.Straddles(ar, y0, y2) {
		return Result[T]{}, fmt.Errorf("%w: y0=%v, y2=%v", ErrNotBracketed, y0, y2)
	}

	xmLast := x0
	for i := 0; i < maxit; i++ {
		x1 := ar.Mul(half, ar.Add(x2, x0))
		y1 := f(x1)
		if numeric.IsZero(ar, y1) || ar.Cmp(ar.Abs(ar.Sub(x1, x0)), eps) < 0 {
			return Result[T]{Root: x1, Iterations: i + 1}, nil
		}
		if numeric.Same(ar, y1, y0) {
			x0, x2, y0, y2 = x2, x0, y2, y0
		}
		y10, y21, y20 := ar.Sub(y1, y0), ar.Sub(y2, y1), ar.Sub(y2, y0)
		if ar.Cmp(ar.Mul(y2, y20), ar.Mul(ar.Mul(two, y1), y10)) < 0 {
			x2, y2 = x1, y1
			s.trace("rootfinder", i+1, x1)

			continue
		}

		b := ar.Quo(ar.Sub(x1, x0), y10)
		c := ar.Quo(ar.Sub(y10, y21), ar.Mul(y21, y20))
		xm := ar.Sub(x0, ar.Mul(ar.Mul(b, y0), ar.Sub(one, ar.Mul(c, y1))))
		ym := f(xm)
		s.trace("rootfinder", i+1, xm)
		if numeric.IsZero(ar, ym) || ar.Cmp(ar.Abs(ar.Sub(xm, xmLast)), eps) < 0 {
			return Result[T]{Root: xm, Iterations: i + 1}, nil
		}
		xmLast = xm
		if numeric.Opposite(ar, ym, y0) {
			x2, y2 = xm, ym
		} else {
			x0, y0, x2, y2 = xm, ym, x1, y1
		}
	}

	return Result[T]{}, fmt.Errorf("%w: RootFinder after %d iterations", ErrTooManyIterations, maxit)
}

// FindRoots returns the roots of f on [x1, x2] that SearchIntervalForRoots
// can see with n subintervals, each refined by RootFinder to eps.
//
// A bracket whose refinement exhausts the iteration cap is skipped and the
// remaining roots are still reported; one pathological subinterval does not
// sink the whole scan. Any other error aborts the call. Roots are in
// left-to-right bracket order; no sign change yields an empty slice.
//
// Errors (before any evaluation): ErrNilFunc, ErrBadSubdivisions,
// ErrBadInterval, ErrBadTolerance.
func (s Solver[T]) FindRoots(f Func[T], n int, x1, x2 T) ([]T, error) {
	eps, err := s.finderPreflight(f, x1, x2)
	if err != nil {
		return nil, err
	}
	brackets, err := s.SearchIntervalForRoots(f, n, x1, x2)
	if err != nil {
		return nil, err
	}

	maxit := s.maxIter(DefaultMaxIter)
	roots := make([]T, 0, len(brackets))
	for _, br := range brackets {
		r, err := s.rootFinder(f, br.Lo, br.Hi, eps, maxit)
		if errors.Is(err, ErrTooManyIterations) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("bracket [%v, %v]: %w", br.Lo, br.Hi, err)
		}
		roots = append(roots, r.Root)
	}

	return roots, nil
}
