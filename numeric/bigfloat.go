// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
)

// DefaultBigPrec is the mantissa precision, in bits, used by BigFloat when
// Prec is zero (about 77 significant decimal digits).
const DefaultBigPrec = 256

// BigFloat is the *big.Float backend. Every result is rounded to Prec bits
// with big.ToNearestEven.
//
// math/big panics with big.ErrNaN for 0/0, ∞-∞ and the square root of a
// negative number; those panics are left to propagate.
type BigFloat struct {
	Prec uint
}

var _ Arith[*big.Float] = BigFloat{}

func (b BigFloat) prec() uint {
	if b.Prec == 0 {
		return DefaultBigPrec
	}

	return b.Prec
}

func (b BigFloat) new() *big.Float {
	return new(big.Float).SetPrec(b.prec())
}

func (b BigFloat) Add(x, y *big.Float) *big.Float { return b.new().Add(x, y) }
func (b BigFloat) Sub(x, y *big.Float) *big.Float { return b.new().Sub(x, y) }
func (b BigFloat) Mul(x, y *big.Float) *big.Float { return b.new().Mul(x, y) }
func (b BigFloat) Quo(x, y *big.Float) *big.Float { return b.new().Quo(x, y) }
func (b BigFloat) Neg(x *big.Float) *big.Float    { return b.new().Neg(x) }
func (b BigFloat) Abs(x *big.Float) *big.Float    { return b.new().Abs(x) }
func (b BigFloat) Sqrt(x *big.Float) *big.Float   { return b.new().Sqrt(x) }

func (BigFloat) Cmp(x, y *big.Float) int { return x.Cmp(y) }
func (BigFloat) Sign(x *big.Float) int   { return x.Sign() }

func (b BigFloat) Parse(s string) (*big.Float, error) {
	v, _, err := big.ParseFloat(s, 10, b.prec(), big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}

	return v, nil
}

func (b BigFloat) FromFloat(f float64) *big.Float { return b.new().SetFloat64(f) }

func (BigFloat) Float64(x *big.Float) float64 {
	f, _ := x.Float64()

	return f
}

// Epsilon returns 2^(1-Prec).
func (b BigFloat) Epsilon() *big.Float {
	return b.new().SetMantExp(big.NewFloat(1), 1-int(b.prec()))
}
