// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
)

// Rat is the exact rational backend. Add, Sub, Mul and Quo are exact; Sqrt is
// the only rounding operation and is carried out in big.Float at SqrtPrec bits
// (DefaultBigPrec when zero) before converting back.
//
// Rationals grow without bound under repeated interpolation, so Rat suits
// bisection-style methods and short Newton runs better than RootFinder.
// Quo panics on division by zero, as big.Rat does.
type Rat struct {
	SqrtPrec uint
}

var _ Arith[*big.Rat] = Rat{}

func (r Rat) sqrtPrec() uint {
	if r.SqrtPrec == 0 {
		return DefaultBigPrec
	}

	return r.SqrtPrec
}

func (Rat) Add(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }
func (Rat) Sub(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }
func (Rat) Mul(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }
func (Rat) Quo(x, y *big.Rat) *big.Rat { return new(big.Rat).Quo(x, y) }
func (Rat) Neg(x *big.Rat) *big.Rat    { return new(big.Rat).Neg(x) }
func (Rat) Abs(x *big.Rat) *big.Rat    { return new(big.Rat).Abs(x) }

func (r Rat) Sqrt(x *big.Rat) *big.Rat {
	f := new(big.Float).SetPrec(r.sqrtPrec()).SetRat(x)
	f.Sqrt(f)
	out, _ := f.Rat(nil)

	return out
}

func (Rat) Cmp(x, y *big.Rat) int { return x.Cmp(y) }
func (Rat) Sign(x *big.Rat) int   { return x.Sign() }

func (Rat) Parse(s string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return v, nil
}

func (Rat) FromFloat(f float64) *big.Rat {
	v := new(big.Rat).SetFloat64(f)
	if v == nil {
		panic(fmt.Sprintf("numeric: Rat.FromFloat(%v): not finite", f))
	}

	return v
}

func (Rat) Float64(x *big.Rat) float64 {
	f, _ := x.Float64()

	return f
}

// Epsilon is zero: rational arithmetic does not round.
func (Rat) Epsilon() *big.Rat { return new(big.Rat) }
