// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvroot/internal/config"
	"github.com/katalvlaran/lvroot/numeric"
	"github.com/katalvlaran/lvroot/poly"
	"github.com/katalvlaran/lvroot/root"
)

// ratDigits is the number of decimals printed for exact rational results.
const ratDigits = 30

// request carries the command-line input of one solver command.
type request struct {
	coeffs []string
	lo, hi string
	n      int
	method string
}

// env is everything a command needs to run on backend T.
type env[T any] struct {
	ar     numeric.Arith[T]
	solver root.Solver[T]
	p      poly.Polynomial[T]
	format func(T) string
	req    request
	out    io.Writer
}

func (e env[T]) parse(flag, lit string) (T, error) {
	v, err := e.ar.Parse(lit)
	if err != nil {
		var zero T

		return zero, fmt.Errorf("--%s: %w", flag, err)
	}

	return v, nil
}

// dispatch instantiates the command for the configured number type.
func dispatch(st *state, req request, out io.Writer,
	fl func(env[float64]) error,
	bf func(env[*big.Float]) error,
	rt func(env[*big.Rat]) error,
	dc func(env[*apd.Decimal]) error,
) error {
	prec := st.cfg.Precision // config.Validate caps it at config.MaxPrecision
	switch st.cfg.Number {
	case config.NumberBigFloat:
		bits := prec
		if bits == 0 {
			bits = numeric.DefaultBigPrec
		}
		digits := int(float64(bits) * math.Log10(2))
		format := func(x *big.Float) string { return x.Text('g', digits) }

		return runWith[*big.Float](st, req, out, numeric.BigFloat{Prec: prec}, format, bf)
	case config.NumberRat:
		format := func(x *big.Rat) string { return x.FloatString(ratDigits) }

		return runWith[*big.Rat](st, req, out, numeric.Rat{SqrtPrec: prec}, format, rt)
	case config.NumberDecimal:
		return runWith[*apd.Decimal](st, req, out, numeric.Decimal{Precision: uint32(prec)}, (*apd.Decimal).String, dc)
	default:
		return runWith[float64](st, req, out, numeric.Float64{}, formatFloat, fl)
	}
}

func runWith[T any](st *state, req request, out io.Writer, ar numeric.Arith[T], format func(T) string, fn func(env[T]) error) error {
	p, err := poly.ParsePolynomial(ar, req.coeffs...)
	if err != nil {
		return err
	}

	var opts []root.Option
	if st.cfg.Tolerance != "" {
		opts = append(opts, root.WithToleranceString(st.cfg.Tolerance))
	}
	if st.cfg.MaxIter > 0 {
		opts = append(opts, root.WithMaxIter(st.cfg.MaxIter))
	}
	if st.verbose {
		opts = append(opts, root.WithTrace(func(s root.Step) {
			st.log.Debug("step", "method", s.Method, "iteration", s.Iteration, "x", s.X)
		}))
	}
	st.log.Debug("solving", "number", st.cfg.Number, "degree", p.Degree(), "tolerance", st.cfg.Tolerance)

	return fn(env[T]{
		ar:     ar,
		solver: root.New(ar, opts...),
		p:      p,
		format: format,
		req:    req,
		out:    out,
	})
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func formatComplex(x complex128) string {
	if imag(x) == 0 {
		return formatFloat(real(x))
	}

	return strconv.FormatComplex(x, 'g', -1, 128)
}
