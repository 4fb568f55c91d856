// SPDX-License-Identifier: MIT

package poly

import "math"

// Pound taps a complex number onto an axis, the way a hammer lays a nail flat.
//
// Zero, pure real and pure imaginary values come back normalized (no signed
// zero on the empty axis). Otherwise, when adjust is set and the smaller
// component is below eps relative to the larger, the value is snapped to the
// dominant axis. Anything else is returned unchanged.
func Pound(x complex128, adjust bool, eps float64) complex128 {
	re, im := real(x), imag(x)
	switch {
	case re == 0 && im == 0:
		return 0
	case im == 0:
		return complex(re, 0)
	case re == 0:
		return complex(0, im)
	}
	if adjust && math.Abs(im/re) < eps {
		return complex(re, 0)
	}
	if adjust && math.Abs(re/im) < eps {
		return complex(0, im)
	}

	return x
}
