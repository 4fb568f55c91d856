// SPDX-License-Identifier: MIT

// Package root finds real roots of one-dimensional functions.
//
// 🚀 What is in the box?
//
//	Bracket utilities:
//	  • SearchIntervalForRoots — scan [x1,x2] in n steps for sign changes (zbrak)
//	  • BracketRoots           — grow an interval until it brackets a root (zbrac)
//	Bracketed refiners:
//	  • Bisection   — halving, fixed iteration count log2(|x2-x1|/tol)
//	  • Ridders     — exponential false position, two evaluations per step
//	  • Brent       — inverse quadratic + secant with bisection fallback (zbrent)
//	  • RootFinder  — Crenshaw's inverse parabolic interpolation, 4th order
//	Drivers:
//	  • FindRoots     — SearchIntervalForRoots + RootFinder, best effort per bracket
//	  • NewtonRaphson — derivative-based, scale-aware stopping rule
//
// ✨ Number types:
//
//	Every method lives on Solver[T] and is written against numeric.Arith[T],
//	so the same code runs on float64, *big.Float, *big.Rat and *apd.Decimal.
//	Package-level functions with the same names are float64 shortcuts.
//
// ⚙️ Usage:
//
//	r, err := root.Brent(func(x float64) float64 { return x - math.Cos(x) }, 0, 1,
//		root.WithTolerance(1e-12))
//
//	s := root.New[*apd.Decimal](numeric.Decimal{Precision: 60},
//		root.WithToleranceString("1e-48"), root.WithMaxIter(30))
//	r, err := s.RootFinder(f, lo, hi)
//
// Errors:
//
//	Invalid input (ErrNilFunc, ErrBadInterval, ErrBadSubdivisions,
//	ErrBadTolerance, ErrNotBracketed) matches errors.Is(err, ErrInvalidInput).
//	ErrTooManyIterations, ErrNoRoot and ErrSingularity are separate kinds.
//	Arithmetic faults inside f or the backend are not intercepted.
//
// Iteration caps are the only limits; there is no timeout, no goroutine and
// no shared state, so a Solver may be used from many goroutines at once as
// long as the evaluated function is itself safe for that.
package root
