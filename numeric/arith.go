// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
)

// ErrParse is returned when a literal cannot be converted into a backend value.
var ErrParse = errors.New("numeric: cannot parse literal")

// Unordered is the Sign of a value that compares neither below, equal to
// nor above zero. Such a value never counts as a root or a sign change.
const Unordered = 2

// Arith is the arithmetic a root finder needs from its number type.
//
// Implementations must be pure: no method may modify x or y, and results must
// not alias arguments that the caller could later observe changing.
type Arith[T any] interface {
	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T
	Quo(x, y T) T
	Neg(x T) T
	Abs(x T) T
	Sqrt(x T) T

	// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
	Cmp(x, y T) int
	// Sign returns -1, 0 or +1 as x is negative, zero or positive, and
	// Unordered for values that have no sign (a float64 NaN).
	Sign(x T) int

	// Parse converts a decimal literal such as "1.6" or "2.5e-15".
	Parse(s string) (T, error)
	FromFloat(f float64) T
	// Float64 returns the nearest float64; used for iteration-count estimates
	// and trace output only, never inside the refinement loops.
	Float64(x T) float64

	// Epsilon is the relative rounding unit of the backend (zero if exact).
	Epsilon() T
}

// MustParse parses a literal known to be valid, panicking otherwise.
// Intended for constants baked into algorithms ("0.5", "1.6").
func MustParse[T any](ar Arith[T], s string) T {
	v, err := ar.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("numeric: MustParse(%q): %v", s, err))
	}

	return v
}

// Max returns the larger of x and y.
func Max[T any](ar Arith[T], x, y T) T {
	if ar.Cmp(x, y) >= 0 {
		return x
	}

	return y
}

// IsZero reports whether x compares equal to zero.
func IsZero[T any](ar Arith[T], x T) bool {
	return ar.Sign(x) == 0
}

// signs returns the signs of x and y, ok=false if either is Unordered.
func signs[T any](ar Arith[T], x, y T) (sx, sy int, ok bool) {
	sx, sy = ar.Sign(x), ar.Sign(y)

	return sx, sy, sx != Unordered && sy != Unordered
}

// Opposite reports whether x and y have strictly opposite signs,
// i.e. whether x·y < 0 without forming the product.
func Opposite[T any](ar Arith[T], x, y T) bool {
	sx, sy, ok := signs(ar, x, y)

	return ok && sx*sy < 0
}

// Same reports whether x and y have the same non-zero sign (x·y > 0).
func Same[T any](ar Arith[T], x, y T) bool {
	sx, sy, ok := signs(ar, x, y)

	return ok && sx*sy > 0
}

// Straddles reports whether x·y <= 0: zero lies in the closed range between
// x and y. It is false when either value is Unordered.
func Straddles[T any](ar Arith[T], x, y T) bool {
	sx, sy, ok := signs(ar, x, y)

	return ok && sx*sy <= 0
}
