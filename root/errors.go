// SPDX-License-Identifier: MIT

package root

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the parent of every "bad arguments" error. It is raised
// before any iteration takes place.
var ErrInvalidInput = errors.New("root: invalid input")

var (
	// ErrNilFunc indicates a nil evaluable function (or derivative).
	ErrNilFunc = fmt.Errorf("%w: function is nil", ErrInvalidInput)

	// ErrBadInterval indicates x1 >= x2 where x1 < x2 is required, or
	// coincident endpoints where an interval is required.
	ErrBadInterval = fmt.Errorf("%w: interval endpoints out of order", ErrInvalidInput)

	// ErrBadSubdivisions indicates a non-positive subdivision count.
	ErrBadSubdivisions = fmt.Errorf("%w: subdivision count must be > 0", ErrInvalidInput)

	// ErrBadTolerance indicates a tolerance that is unparsable or not positive.
	ErrBadTolerance = fmt.Errorf("%w: tolerance must be > 0", ErrInvalidInput)

	// ErrNotBracketed indicates that f has the same sign at both endpoints,
	// or that f is NaN at one of them.
	ErrNotBracketed = fmt.Errorf("%w: root not bracketed", ErrInvalidInput)
)

var (
	// ErrTooManyIterations is returned by every iterative method whose
	// iteration cap was exhausted before convergence.
	ErrTooManyIterations = errors.New("root: too many iterations")

	// ErrNoRoot signals Ridders' degenerate step: sqrt(fc²-fa·fb) == 0 at a
	// midpoint that is not itself a root.
	ErrNoRoot = errors.New("root: no root")

	// ErrSingularity is returned by Bisection under WithSwitch when the
	// midpoint magnitude exceeds both endpoint magnitudes.
	ErrSingularity = errors.New("root: f(x) increasing on interval bisection (singularity?)")
)
