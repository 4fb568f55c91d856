// SPDX-License-Identifier: MIT

// Package numeric defines the number-type contract used by the root finders
// and ships four backends for it.
//
// 🚀 Why a contract instead of float64?
//
//	Every algorithm in lvroot/root is written once against Arith[T] and runs
//	unchanged on machine floats, binary big floats, exact rationals and
//	arbitrary-precision decimals:
//	  • Float64  — float64, IEEE semantics (x/0 = ±Inf)
//	  • BigFloat — *big.Float with a fixed mantissa precision in bits
//	  • Rat      — *big.Rat, exact; Sqrt rounds through big.Float
//	  • Decimal  — *apd.Decimal with a fixed number of decimal digits
//
// ✨ Contract:
//   - Operations never mutate their arguments; each returns a fresh value.
//   - Parse converts decimal literals ("2.5e-15") without going through float64,
//     so tolerances keep their exact meaning in decimal arithmetic.
//   - Arithmetic faults are not intercepted: Rat panics on division by zero,
//     Decimal panics on trapped conditions, Float64 yields ±Inf/NaN.
//
// ⚙️ Usage:
//
//	ar := numeric.Decimal{Precision: 50}
//	x, _ := ar.Parse("1.5")
//	y := ar.Mul(x, x) // 2.25
//
// Backends are plain values with no internal state and are safe for
// concurrent use.
package numeric
