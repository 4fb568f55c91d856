// SPDX-License-Identifier: MIT

package poly

import "errors"

var (
	// ErrZeroLeading indicates a zero leading coefficient, i.e. the equation
	// is not of the requested degree.
	ErrZeroLeading = errors.New("poly: leading coefficient must not be zero")

	// ErrEmptyPolynomial indicates a Polynomial with no coefficients.
	ErrEmptyPolynomial = errors.New("poly: polynomial has no coefficients")
)
