// SPDX-License-Identifier: MIT

package root

import "github.com/katalvlaran/lvroot/numeric"

// Float64 returns a float64 Solver, the common case.
func Float64(opts ...Option) Solver[float64] {
	return New[float64](numeric.Float64{}, opts...)
}

// SearchIntervalForRoots is Solver.SearchIntervalForRoots on float64.
func SearchIntervalForRoots(f func(float64) float64, n int, x1, x2 float64) ([]Bracket[float64], error) {
	return Float64().SearchIntervalForRoots(f, n, x1, x2)
}

// BracketRoots is Solver.BracketRoots on float64.
func BracketRoots(f func(float64) float64, x1, x2 float64, opts ...Option) (Bracket[float64], error) {
	return Float64(opts...).BracketRoots(f, x1, x2)
}

// Bisection is Solver.Bisection on float64.
func Bisection(f func(float64) float64, x1, x2 float64, opts ...Option) (Result[float64], error) {
	return Float64(opts...).Bisection(f, x1, x2)
}

// Ridders is Solver.Ridders on float64.
func Ridders(f func(float64) float64, a, b float64, opts ...Option) (Result[float64], error) {
	return Float64(opts...).Ridders(f, a, b)
}

// Brent is Solver.Brent on float64.
func Brent(f func(float64) float64, x1, x2 float64, opts ...Option) (Result[float64], error) {
	return Float64(opts...).Brent(f, x1, x2)
}

// RootFinder is Solver.RootFinder on float64.
func RootFinder(f func(float64) float64, x0, x2 float64, opts ...Option) (Result[float64], error) {
	return Float64(opts...).RootFinder(f, x0, x2)
}

// FindRoots is Solver.FindRoots on float64.
func FindRoots(f func(float64) float64, n int, x1, x2 float64, opts ...Option) ([]float64, error) {
	return Float64(opts...).FindRoots(f, n, x1, x2)
}

// NewtonRaphson is Solver.NewtonRaphson on float64.
func NewtonRaphson(f, fd func(float64) float64, x float64, opts ...Option) (Result[float64], error) {
	return Float64(opts...).NewtonRaphson(f, fd, x)
}
