// SPDX-License-Identifier: MIT

package poly_test

import (
	"fmt"

	"github.com/katalvlaran/lvroot/numeric"
	"github.com/katalvlaran/lvroot/poly"
	"github.com/katalvlaran/lvroot/root"
)

// ExampleQuadraticEquation shows real and complex roots side by side.
func ExampleQuadraticEquation() {
	r, _ := poly.QuadraticEquation(1, 4, -21)
	fmt.Println(r)
	r, _ = poly.QuadraticEquation(1, -4, 5)
	fmt.Println(r)
	// Output:
	// [(-7+0i) (3+0i)]
	// [(2-1i) (2+1i)]
}

// ExampleCubicEquation solves (x-1)(x-2)(x-3) = 0; the negligible imaginary
// residue of the algebraic solution is snapped away.
func ExampleCubicEquation() {
	r, _ := poly.CubicEquation(1, -6, 11, -6)
	for _, x := range r {
		fmt.Printf("%.6f\n", real(x))
	}
	// Output:
	// 3.000000
	// 1.000000
	// 2.000000
}

// ExamplePolynomial feeds a parsed polynomial to an iterative root finder.
func ExamplePolynomial() {
	p, err := poly.ParsePolynomial[float64](numeric.Float64{}, "1", "0", "-2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r, err := root.NewtonRaphson(p.Eval, p.Derivative().Eval, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.12f\n", r.Root)
	// Output:
	// 1.414213562373
}
