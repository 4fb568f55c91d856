// SPDX-License-Identifier: MIT

package root

import "fmt"

// NewtonRaphson iterates x ← x - f(x)/fd(x) from the initial guess x until
//
//	|dx| < tol·(1 + |x|)
//
// which reads as an absolute test near zero and a relative one far from it.
// The returned root includes the final step; Iterations counts every step.
//
// A vanishing derivative is not guarded: the division is left to the backend
// (±Inf/NaN for float64, a panic for Rat or Decimal).
//
// Default tolerance: DefaultNewtonTol; default cap: DefaultNewtonMaxIter.
func (s Solver[T]) NewtonRaphson(f, fd Func[T], x T) (Result[T], error) {
	if f == nil || fd == nil {
		return Result[T]{}, ErrNilFunc
	}
	tol, err := s.tolerance(DefaultNewtonTol)
	if err != nil {
		return Result[T]{}, err
	}
	ar := s.ar
	one := s.lit("1")
	maxit := s.maxIter(DefaultNewtonMaxIter)

	for count := 0; ; {
		dx := ar.Quo(f(x), fd(x))
		if ar.Cmp(ar.Abs(dx), ar.Mul(tol, ar.Add(one, ar.Abs(x)))) < 0 {
			return Result[T]{Root: ar.Sub(x, dx), Iterations: count + 1}, nil
		}
		x = ar.Sub(x, dx)
		count++
		s.trace("newton", count, x)
		if count > maxit {
			return Result[T]{}, fmt.Errorf("%w: NewtonRaphson after %d iterations, x=%v",
				ErrTooManyIterations, maxit, x)
		}
	}
}
