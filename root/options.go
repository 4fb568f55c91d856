// SPDX-License-Identifier: MIT

package root

import (
	"math"
	"strconv"
)

// Default tolerances, kept as decimal literals so every backend parses them
// exactly.
const (
	// DefaultEpsilon is the precision of RootFinder and FindRoots.
	DefaultEpsilon = "2.5e-15"

	// DefaultBisectionTol is the relative tolerance of Bisection.
	DefaultBisectionTol = "1e-9"

	// DefaultRiddersTol is the relative tolerance of Ridders.
	DefaultRiddersTol = "1e-9"

	// DefaultBrentTol is the absolute tolerance of Brent.
	DefaultBrentTol = "1e-6"

	// DefaultNewtonTol is the scale-aware tolerance of NewtonRaphson.
	DefaultNewtonTol = "1e-9"
)

// Default iteration caps.
const (
	DefaultMaxIter       = 100
	DefaultNewtonMaxIter = 200
)

const (
	panicToleranceInvalid = "root: WithTolerance: tol must be finite and > 0"
	panicToleranceEmpty   = "root: WithToleranceString: empty literal"
	panicMaxIterInvalid   = "root: WithMaxIter: n must be > 0"
)

// Step describes one iteration of a method; it is what WithTrace observers see.
type Step struct {
	Method    string  // "bisection", "ridders", "brent", "rootfinder", "newton", "bracket"
	Iteration int     // 1-based
	X         float64 // current estimate, rounded to float64 for display
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the resolved configuration of a Solver. Zero fields mean
// "use the method's default".
type Options struct {
	tol     string
	maxIter int
	check   bool
	trace   func(Step)
}

// WithTolerance sets the tolerance from a float64. The value is formatted in
// shortest round-trip form, so 1e-9 reaches a Decimal backend as "1e-09".
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}
	s := strconv.FormatFloat(tol, 'g', -1, 64)

	return func(o *Options) { o.tol = s }
}

// WithToleranceString sets the tolerance as a literal parsed by the backend,
// e.g. "1e-48" for a 50-digit Decimal. Parse failures and non-positive values
// surface as ErrBadTolerance when a method runs.
func WithToleranceString(tol string) Option {
	if tol == "" {
		panic(panicToleranceEmpty)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIter sets the iteration cap.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithSwitch enables Bisection's singularity heuristic: fail when the
// midpoint |f| exceeds both endpoint |f|. It can reject well-behaved
// functions (a steep polynomial trips it), hence off by default.
func WithSwitch() Option {
	return func(o *Options) { o.check = true }
}

// WithTrace installs an observer called once per iteration.
func WithTrace(fn func(Step)) Option {
	return func(o *Options) { o.trace = fn }
}

func gatherOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
