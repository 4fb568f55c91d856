// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroot/root"
)

// Method names accepted by --method.
const (
	methodBisection = "bisection"
	methodRidders   = "ridders"
	methodBrent     = "brent"
	methodFinder    = "finder"
	methodNewton    = "newton"
)

func newSolveCmd(st *state) *cobra.Command {
	var req request

	cmd := &cobra.Command{
		Use:   "solve --method M --lo X [--hi Y] -- coefficients...",
		Short: "Refine a single root with the chosen method",
		Long: `solve refines the root bracketed by [X, Y] and prints it with the number
of iterations spent. Methods: bisection, ridders, brent, finder (Crenshaw's
inverse parabolic interpolation) and newton, which starts from X and uses the
derivative of the polynomial; --hi is ignored for newton.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch req.method {
			case methodBisection, methodRidders, methodBrent, methodFinder:
				if req.hi == "" {
					return fmt.Errorf("method %s needs --hi", req.method)
				}
			case methodNewton:
			default:
				return fmt.Errorf("unknown method %q (want bisection, ridders, brent, finder or newton)", req.method)
			}
			req.coeffs = args

			return dispatch(st, req, cmd.OutOrStdout(),
				solve[float64], solve[*big.Float], solve[*big.Rat], solve[*apd.Decimal])
		},
	}

	cmd.Flags().StringVarP(&req.method, "method", "m", methodFinder, "bisection, ridders, brent, finder or newton")
	cmd.Flags().StringVar(&req.lo, "lo", "", "left end of the bracket (initial guess for newton)")
	cmd.Flags().StringVar(&req.hi, "hi", "", "right end of the bracket")
	_ = cmd.MarkFlagRequired("lo")

	return cmd
}

func solve[T any](e env[T]) error {
	lo, err := e.parse("lo", e.req.lo)
	if err != nil {
		return err
	}

	var r root.Result[T]
	if e.req.method == methodNewton {
		r, err = e.solver.NewtonRaphson(e.p.Eval, e.p.Derivative().Eval, lo)
	} else {
		hi, perr := e.parse("hi", e.req.hi)
		if perr != nil {
			return perr
		}
		switch e.req.method {
		case methodBisection:
			r, err = e.solver.Bisection(e.p.Eval, lo, hi)
		case methodRidders:
			r, err = e.solver.Ridders(e.p.Eval, lo, hi)
		case methodBrent:
			r, err = e.solver.Brent(e.p.Eval, lo, hi)
		default:
			r, err = e.solver.RootFinder(e.p.Eval, lo, hi)
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "%s (%d iterations)\n", e.format(r.Root), r.Iterations)

	return nil
}
