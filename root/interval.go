// SPDX-License-Identifier: MIT

package root

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvroot/numeric"
)

// SearchIntervalForRoots splits [x1, x2] into n equal subintervals and
// returns, left to right, those whose endpoint values have a strict sign
// change. The last partition point is x2 itself.
//
// Roots that only touch zero, double roots, and several roots inside one
// subinterval are invisible at this resolution; n is the caller's knob.
// An empty result is not an error.
//
// Errors: ErrNilFunc, ErrBadSubdivisions (n <= 0), ErrBadInterval (x1 >= x2).
func (s Solver[T]) SearchIntervalForRoots(f Func[T], n int, x1, x2 T) ([]Bracket[T], error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSubdivisions, n)
	}
	ar := s.ar
	if ar.Cmp(x1, x2) >= 0 {
		return nil, fmt.Errorf("%w: need x1 < x2, got [%v, %v]", ErrBadInterval, x1, x2)
	}

	delta := ar.Quo(ar.Sub(x2, x1), s.lit(strconv.Itoa(n)))
	brackets := make([]Bracket[T], 0)
	x0, y0 := x1, f(x1)
	for i := 1; i <= n; i++ {
		x := x2
		if i < n {
			x = ar.Add(x1, ar.Mul(s.lit(strconv.Itoa(i)), delta))
		}
		y := f(x)
		if numeric.Opposite(ar, y0, y) {
			brackets = append(brackets, Bracket[T]{Lo: x0, Hi: x})
		}
		x0, y0 = x, y
	}

	return brackets, nil
}

// BracketRoots widens [x1, x2] geometrically until f changes sign across it
// (zbrac). The endpoint with the smaller |f| moves outward by 1.6 times the
// current width per step. Endpoint order does not matter.
//
// Errors: ErrNilFunc, ErrBadInterval (x1 == x2), ErrTooManyIterations when
// more than the iteration cap (default 100) expansions were needed.
func (s Solver[T]) BracketRoots(f Func[T], x1, x2 T) (Bracket[T], error) {
	if f == nil {
		return Bracket[T]{}, ErrNilFunc
	}
	ar := s.ar
	switch ar.Cmp(x1, x2) {
	case 0:
		return Bracket[T]{}, fmt.Errorf("%w: x1 == x2 == %v", ErrBadInterval, x1)
	case 1:
		x1, x2 = x2, x1
	}

	maxit := s.maxIter(DefaultMaxIter)
	factor := s.lit("1.6")
	f1, f2 := f(x1), f(x2)
	for count := 0; ; {
		if numeric.Opposite(ar, f1, f2) {
			return Bracket[T]{Lo: x1, Hi: x2}, nil
		}
		count++
		if ar.Cmp(ar.Abs(f1), ar.Abs(f2)) < 0 {
			x1 = ar.Add(x1, ar.Mul(factor, ar.Sub(x1, x2)))
			f1 = f(x1)
			s.trace("bracket", count, x1)
		} else {
			x2 = ar.Add(x2, ar.Mul(factor, ar.Sub(x2, x1)))
			f2 = f(x2)
			s.trace("bracket", count, x2)
		}
		if count > maxit {
			return Bracket[T]{}, fmt.Errorf("%w: BracketRoots after %d expansions, [%v, %v]",
				ErrTooManyIterations, maxit, x1, x2)
		}
	}
}
