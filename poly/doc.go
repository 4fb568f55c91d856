// SPDX-License-Identifier: MIT

// Package poly solves polynomial equations of degree two to four in closed
// form and evaluates real polynomials for the iterative root finders.
//
// Closed forms (complex128 coefficients, complex128 roots):
//   - QuadraticEquation — sign-of-b branch for real coefficients to avoid
//     cancellation, normalized formula for complex ones.
//   - CubicEquation, QuarticEquation — algebraic solutions with shared
//     subexpressions; pure powers a·xⁿ + k = 0 use De Moivre enumeration.
//
// Root clean-up is controlled by options shared by all three solvers:
//   - WithAdjust(true) (default) snaps a root whose off-axis component is
//     negligible onto the real or imaginary axis; see Pound.
//   - WithForceReal() keeps only real parts. A genuine complex root is
//     silently flattened, so use it only when the model guarantees real roots
//     (cubic equations of state, for instance).
//
// Real polynomials (Polynomial) are evaluated with Horner's rule over any
// numeric.Arith backend, which is how the CLI feeds FindRoots and
// NewtonRaphson with input of arbitrary degree.
package poly
