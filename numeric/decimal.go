// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// DefaultDecimalPrecision is the number of significant digits used by
// Decimal when Precision is zero.
const DefaultDecimalPrecision = 50

// Decimal is the arbitrary-precision decimal backend built on apd.
//
// Operations run under apd.BaseContext with the configured precision. A
// trapped condition (division by zero, invalid operation, overflow) panics
// with the apd error; rounding is not trapped.
type Decimal struct {
	Precision uint32
}

var _ Arith[*apd.Decimal] = Decimal{}

func (d Decimal) ctx() *apd.Context {
	p := d.Precision
	if p == 0 {
		p = DefaultDecimalPrecision
	}

	return apd.BaseContext.WithPrecision(p)
}

type decimalOp func(z, x, y *apd.Decimal) (apd.Condition, error)

func apply(op decimalOp, x, y *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	if _, err := op(z, x, y); err != nil {
		panic(fmt.Sprintf("numeric: decimal: %v", err))
	}

	return z
}

func (d Decimal) Add(x, y *apd.Decimal) *apd.Decimal { return apply(d.ctx().Add, x, y) }
func (d Decimal) Sub(x, y *apd.Decimal) *apd.Decimal { return apply(d.ctx().Sub, x, y) }
func (d Decimal) Mul(x, y *apd.Decimal) *apd.Decimal { return apply(d.ctx().Mul, x, y) }
func (d Decimal) Quo(x, y *apd.Decimal) *apd.Decimal { return apply(d.ctx().Quo, x, y) }

func (Decimal) Neg(x *apd.Decimal) *apd.Decimal { return new(apd.Decimal).Neg(x) }
func (Decimal) Abs(x *apd.Decimal) *apd.Decimal { return new(apd.Decimal).Abs(x) }

func (d Decimal) Sqrt(x *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	if _, err := d.ctx().Sqrt(z, x); err != nil {
		panic(fmt.Sprintf("numeric: decimal: %v", err))
	}

	return z
}

func (Decimal) Cmp(x, y *apd.Decimal) int { return x.Cmp(y) }

func (Decimal) Sign(x *apd.Decimal) int {
	if x.Form == apd.NaN || x.Form == apd.NaNSignaling {
		return Unordered
	}

	return x.Sign()
}

func (d Decimal) Parse(s string) (*apd.Decimal, error) {
	v, _, err := d.ctx().NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}

	return v, nil
}

func (Decimal) FromFloat(f float64) *apd.Decimal {
	v, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("numeric: Decimal.FromFloat(%v): %v", f, err))
	}

	return v
}

func (Decimal) Float64(x *apd.Decimal) float64 {
	f, _ := x.Float64()

	return f
}

// Epsilon returns 10^(1-Precision).
func (d Decimal) Epsilon() *apd.Decimal {
	return apd.New(1, 1-int32(d.ctx().Precision))
}
