// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math"
	"math/cmplx"
)

var (
	cbrt2  = complex(math.Cbrt(2), 0) // 2^(1/3)
	cbrt4  = complex(math.Cbrt(4), 0) // 2^(2/3)
	iSqrt3 = complex(0, math.Sqrt(3)) // i·√3
	third  = complex(1.0/3, 0)
)

// QuadraticEquation returns the two roots of a·x² + b·x + c = 0.
//
// With real coefficients the roots are taken from
//
//	b >= 0:  x1 = (-b - √D)/(2a),   x2 = 2c/(-b - √D)
//	b <  0:  x1 = 2c/(-b + √D),     x2 = (-b + √D)/(2a)
//
// (D = b² - 4ac) so that -b and √D are never subtracted when they are close,
// which would otherwise cost digits when the roots differ greatly in
// magnitude. Complex coefficients use -p/2 ± sqrt(p²/4 - q), p = b/a, q = c/a.
func QuadraticEquation(a, b, c complex128, opts ...Option) ([2]complex128, error) {
	if a == 0 {
		return [2]complex128{}, fmt.Errorf("%w: a=%v", ErrZeroLeading, a)
	}
	o := gatherOptions(opts)

	var x1, x2 complex128
	if imag(a) == 0 && imag(b) == 0 && imag(c) == 0 {
		x1, x2 = stableQuadratic(real(a), real(b), real(c))
	} else {
		p, q := b/a, c/a
		d := cmplx.Sqrt(p*p/4 - q)
		x1, x2 = -p/2+d, -p/2-d
	}

	return [2]complex128{o.finish(x1), o.finish(x2)}, nil
}

func stableQuadratic(a, b, c float64) (complex128, complex128) {
	sd := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	if b >= 0 {
		den := complex(-b, 0) - sd
		if den == 0 { // b == 0 and c == 0: a·x² = 0
			return 0, 0
		}

		return den / complex(2*a, 0), complex(2*c, 0) / den
	}
	den := complex(-b, 0) + sd

	return complex(2*c, 0) / den, den / complex(2*a, 0)
}

// CubicEquation returns the three roots of a·x³ + b·x² + c·x + d = 0.
//
// Special cases: b = c = d = 0 gives a triple zero root; b = c = 0 gives the
// three cube roots of -d/a by De Moivre; a vanishing Cardano term (triple
// root) gives -b/(3a) three times.
func CubicEquation(a, b, c, d complex128, opts ...Option) ([3]complex128, error) {
	if a == 0 {
		return [3]complex128{}, fmt.Errorf("%w: a=%v", ErrZeroLeading, a)
	}
	o := gatherOptions(opts)

	var roots [3]complex128
	switch {
	case b == 0 && c == 0 && d == 0:
		return roots, nil
	case b == 0 && c == 0:
		copy(roots[:], deMoivre(-d/a, 3))
	default:
		u := -2*b*b*b + 9*a*b*c - 27*a*a*d
		dd := -b*b + 3*a*c
		v := cmplx.Sqrt(4*dd*dd*dd + u*u)
		y := cubeRoot(u + v)
		if y == 0 {
			y = cubeRoot(u - v)
		}
		z := -b / (3 * a)
		if y == 0 {
			roots = [3]complex128{z, z, z}

			break
		}
		t := 3 * cbrt4 * a * y
		x := 6 * cbrt2 * a
		roots[0] = z - cbrt2*dd/(3*a*y) + y/(3*cbrt2*a)
		roots[1] = z + ((1+iSqrt3)*dd)/t - ((1-iSqrt3)*y)/x
		roots[2] = z + ((1-iSqrt3)*dd)/t - ((1+iSqrt3)*y)/x
	}
	for i := range roots {
		roots[i] = o.finish(roots[i])
	}

	return roots, nil
}

// QuarticEquation returns the four roots of a·x⁴ + b·x³ + c·x² + d·x + e = 0.
//
// Special cases mirror CubicEquation: all lower coefficients zero gives a
// quadruple zero root; b = c = d = 0 gives the fourth roots of -e/a.
func QuarticEquation(a, b, c, d, e complex128, opts ...Option) ([4]complex128, error) {
	if a == 0 {
		return [4]complex128{}, fmt.Errorf("%w: a=%v", ErrZeroLeading, a)
	}
	o := gatherOptions(opts)

	var roots [4]complex128
	switch {
	case b == 0 && c == 0 && d == 0 && e == 0:
		return roots, nil
	case b == 0 && c == 0 && d == 0:
		copy(roots[:], deMoivre(-e/a, 4))
	default:
		p := -b / (4 * a)
		q := c*c - 3*b*d + 12*a*e
		r := 2*c*c*c - 9*b*c*d + 27*a*d*d + 27*b*b*e - 72*a*c*e
		s := cmplx.Sqrt(-4*q*q*q + r*r)
		cr := cubeRoot(r + s)
		if cr == 0 {
			cr = cubeRoot(r - s)
		}
		u := cr / (3 * cbrt2 * a)
		v := -(b*b*b)/(a*a*a) + (4*b*c)/(a*a) - (8*d)/a

		var qt complex128 // 2^(1/3)·q / (3a·cr); both vanish together
		if cr != 0 {
			qt = cbrt2 * q / (3 * a * cr)
		}
		w := cmplx.Sqrt(b*b/(4*a*a) - (2*c)/(3*a) + qt + u)
		x := b*b/(2*a*a) - (4*c)/(3*a) - qt - u

		var vw complex128 // v/(4w); v is zero whenever w is
		if w != 0 {
			vw = v / (4 * w)
		}
		y := cmplx.Sqrt(x-vw) / 2
		z := cmplx.Sqrt(x+vw) / 2
		roots = [4]complex128{p - w/2 - y, p - w/2 + y, p + w/2 - z, p + w/2 + z}
	}
	for i := range roots {
		roots[i] = o.finish(roots[i])
	}

	return roots, nil
}

// deMoivre returns the n complex nth roots of z:
//
//	|z|^(1/n)·(cos((θ+2kπ)/n) + i·sin((θ+2kπ)/n)),  k = 0..n-1
func deMoivre(z complex128, n int) []complex128 {
	if imag(z) == 0 {
		z = complex(real(z), 0) // drop -0 so a negative real has θ = +π
	}
	rn := math.Pow(cmplx.Abs(z), 1/float64(n))
	theta := cmplx.Phase(z)
	out := make([]complex128, n)
	for k := range out {
		phi := (theta + 2*float64(k)*math.Pi) / float64(n)
		out[k] = complex(rn*math.Cos(phi), rn*math.Sin(phi))
	}

	return out
}

// cubeRoot is the principal cube root, with cubeRoot(0) == 0.
func cubeRoot(x complex128) complex128 {
	if x == 0 {
		return 0
	}

	return cmplx.Pow(x, third)
}
