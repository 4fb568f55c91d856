// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"
)

func newScanCmd(st *state) *cobra.Command {
	var req request

	cmd := &cobra.Command{
		Use:   "scan --from X --to Y [-n N] -- coefficients...",
		Short: "Find every root visible on an N-step grid",
		Long: `scan splits [X, Y] into N subintervals, keeps those where the polynomial
changes sign and refines each one. Brackets that do not converge within the
iteration cap are skipped; the rest are still printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.coeffs = args
			if !cmd.Flags().Changed("subdivisions") {
				req.n = st.cfg.Subdivisions
			}

			return dispatch(st, req, cmd.OutOrStdout(),
				scan[float64], scan[*big.Float], scan[*big.Rat], scan[*apd.Decimal])
		},
	}

	cmd.Flags().StringVar(&req.lo, "from", "", "left end of the interval")
	cmd.Flags().StringVar(&req.hi, "to", "", "right end of the interval")
	cmd.Flags().IntVarP(&req.n, "subdivisions", "n", 0, "number of subintervals (default from config)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func scan[T any](e env[T]) error {
	lo, err := e.parse("from", e.req.lo)
	if err != nil {
		return err
	}
	hi, err := e.parse("to", e.req.hi)
	if err != nil {
		return err
	}

	roots, err := e.solver.FindRoots(e.p.Eval, e.req.n, lo, hi)
	if err != nil {
		return err
	}
	for _, r := range roots {
		fmt.Fprintln(e.out, e.format(r))
	}

	return nil
}
