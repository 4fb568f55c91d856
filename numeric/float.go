// SPDX-License-Identifier: MIT

package numeric

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// Float64 is the machine-float backend.
//
// Division by zero follows IEEE 754 (±Inf or NaN). NaN orders below every
// number in Cmp, matching cmp.Compare, but its Sign is Unordered.
type Float64 struct{}

var _ Arith[float64] = Float64{}

// float64Epsilon is 2^-52, the spacing of float64 values around 1.
const float64Epsilon = 0x1p-52

func (Float64) Add(x, y float64) float64 { return x + y }
func (Float64) Sub(x, y float64) float64 { return x - y }
func (Float64) Mul(x, y float64) float64 { return x * y }
func (Float64) Quo(x, y float64) float64 { return x / y }
func (Float64) Neg(x float64) float64    { return -x }
func (Float64) Abs(x float64) float64    { return math.Abs(x) }
func (Float64) Sqrt(x float64) float64   { return math.Sqrt(x) }

func (Float64) Cmp(x, y float64) int { return cmp.Compare(x, y) }

func (Float64) Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x == 0:
		return 0
	case x < 0:
		return -1
	default:
		return Unordered
	}
}

func (Float64) Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}

	return v, nil
}

func (Float64) FromFloat(f float64) float64 { return f }
func (Float64) Float64(x float64) float64   { return x }
func (Float64) Epsilon() float64            { return float64Epsilon }
