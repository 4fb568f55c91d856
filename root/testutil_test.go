// SPDX-License-Identifier: MIT

package root_test

import (
	"math"

	"github.com/katalvlaran/lvroot/numeric"
)

// Test functions with well-known roots.

func dottie(x float64) float64 { return x - math.Cos(x) } // 0.7390851332151607

func sinc(x float64) float64 { return math.Sin(x) / x } // kπ

func tanMinusOne(x float64) float64 { return math.Tan(x) - 1 } // π/4

func secSquared(x float64) float64 { c := math.Cos(x); return 1 / (c * c) }

// quintic is (x-1)(x-2)(x-3)(x-4)(x-5).
func quintic(x float64) float64 {
	return (x - 1) * (x - 2) * (x - 3) * (x - 4) * (x - 5)
}

// farRoot has roots 100001 and -100, so the function is steep near the
// positive root and easily fools the singularity heuristic.
func farRoot(x float64) float64 { return (x - 100001) * (x + 100) }

// poleAtE has roots kπ and a pole at e that also changes sign.
func poleAtE(x float64) float64 { return math.Sin(x) / (x - math.E) }

// eighthRootOfTwo is 2^(1/8) to 70 significant digits.
const eighthRootOfTwo = "1.090507732665257659207010655760707978992702718540067121785667647683301"

// powMinus returns x^n - c on any backend.
func powMinus[T any](ar numeric.Arith[T], n int, c string) func(T) T {
	k := numeric.MustParse(ar, c)

	return func(x T) T {
		p := x
		for i := 1; i < n; i++ {
			p = ar.Mul(p, x)
		}

		return ar.Sub(p, k)
	}
}

// absDiff returns |x - y| rounded to float64.
func absDiff[T any](ar numeric.Arith[T], x, y T) float64 {
	return ar.Float64(ar.Abs(ar.Sub(x, y)))
}
