// SPDX-License-Identifier: MIT

package poly_test

import (
	"testing"

	"github.com/katalvlaran/lvroot/numeric"
	"github.com/katalvlaran/lvroot/poly"
)

var (
	sinkC [4]complex128
	sinkF float64
)

func BenchmarkQuarticEquation(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r, err := poly.QuarticEquation(1, -10, 35, -50, 24)
		if err != nil {
			b.Fatal(err)
		}
		sinkC = r
	}
}

func BenchmarkPolynomial_Eval(b *testing.B) {
	p, err := poly.NewPolynomial[float64](numeric.Float64{}, 1, -15, 85, -225, 274, -120)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = p.Eval(2.5)
	}
}
