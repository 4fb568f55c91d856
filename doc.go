// SPDX-License-Identifier: MIT

// Package lvroot is a small toolbox for finding the roots of real functions
// of one variable, at whatever precision the problem calls for.
//
// 🚀 What is lvroot?
//
//	A generic, allocation-aware library that brings together:
//		• Bracketing: grid scan for sign changes, outward bracket expansion
//		• Bracketed refiners: bisection, Ridders, Brent, a hybrid RootFinder
//		• Open refiners: Newton–Raphson with a caller-supplied derivative
//		• Closed forms: quadratic, cubic and quartic equations over ℂ
//		• Backends: float64, *big.Float, *big.Rat and apd decimals
//
// ✨ Why choose lvroot?
//
//   - One algorithm, many number types – write f once against numeric.Arith
//   - Immutable solvers – build with options, share across goroutines
//   - Typed errors – errors.Is against root.ErrInvalidInput and friends
//   - Observable – hook every step with root.WithTrace
//
// Packages:
//
//	numeric/ — the Arith[T] arithmetic contract and its four backends
//	root/    — bracketing, refiners and the FindRoots driver
//	poly/    — closed-form equation solvers and generic polynomials
//	cmd/     — the rootfind command-line tool
//
// Quick example:
//
//	xs, _ := root.FindRoots(math.Sin, 100, 1, 10)
//	// xs ≈ [π 2π 3π]
//
//	go get github.com/katalvlaran/lvroot
package lvroot
