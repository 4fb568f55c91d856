// SPDX-License-Identifier: MIT

package root

import (
	"fmt"

	"github.com/katalvlaran/lvroot/numeric"
)

// Func is an evaluable function. It must be deterministic: several methods
// evaluate it at the same point more than once and rely on equal answers.
// Extra parameters are captured by closure.
type Func[T any] func(x T) T

// Result is a refined root and the number of iterations spent on it.
// Iterations is 0 when an endpoint was already an exact root.
type Result[T any] struct {
	Root       T
	Iterations int
}

// Bracket is an interval [Lo, Hi] over which f changes sign.
type Bracket[T any] struct {
	Lo, Hi T
}

// Solver binds a numeric backend to a set of options. It is an immutable
// value; copies share nothing mutable.
type Solver[T any] struct {
	ar   numeric.Arith[T]
	opts Options
}

// New returns a Solver computing with ar.
// Panics if ar is nil (programmer error).
func New[T any](ar numeric.Arith[T], opts ...Option) Solver[T] {
	if ar == nil {
		panic("root: New: nil Arith")
	}

	return Solver[T]{ar: ar, opts: gatherOptions(opts)}
}

// Arith returns the backend the solver computes with.
func (s Solver[T]) Arith() numeric.Arith[T] { return s.ar }

// With returns a copy of s with extra options applied on top.
func (s Solver[T]) With(opts ...Option) Solver[T] {
	o := s.opts
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return Solver[T]{ar: s.ar, opts: o}
}

// tolerance parses the configured tolerance (or def) and checks it is > 0.
func (s Solver[T]) tolerance(def string) (T, error) {
	lit := s.opts.tol
	if lit == "" {
		lit = def
	}
	v, err := s.ar.Parse(lit)
	if err != nil {
		var zero T

		return zero, fmt.Errorf("%w: %v", ErrBadTolerance, err)
	}
	if s.ar.Sign(v) != 1 {
		return v, fmt.Errorf("%w: got %s", ErrBadTolerance, lit)
	}

	return v, nil
}

func (s Solver[T]) maxIter(def int) int {
	if s.opts.maxIter > 0 {
		return s.opts.maxIter
	}

	return def
}

func (s Solver[T]) lit(v string) T {
	return numeric.MustParse(s.ar, v)
}

func (s Solver[T]) trace(method string, i int, x T) {
	if s.opts.trace != nil {
		s.opts.trace(Step{Method: method, Iteration: i, X: s.ar.Float64(x)})
	}
}

// halvings returns ceil(log2(width/tol)), clamped at zero: the number of
// times tol must double to reach width. It runs in the backend, so ratios
// beyond the float64 range are counted exactly.
func halvings[T any](ar numeric.Arith[T], width, tol T) int {
	n := 0
	for w := tol; ar.Cmp(w, width) < 0; w = ar.Add(w, w) {
		n++
	}

	return n
}
