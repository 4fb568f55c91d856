// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"
)

func newBracketCmd(st *state) *cobra.Command {
	var req request

	cmd := &cobra.Command{
		Use:   "bracket --lo X --hi Y -- coefficients...",
		Short: "Widen [X, Y] until the polynomial changes sign across it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.coeffs = args

			return dispatch(st, req, cmd.OutOrStdout(),
				bracket[float64], bracket[*big.Float], bracket[*big.Rat], bracket[*apd.Decimal])
		},
	}

	cmd.Flags().StringVar(&req.lo, "lo", "", "one end of the starting interval")
	cmd.Flags().StringVar(&req.hi, "hi", "", "the other end")
	_ = cmd.MarkFlagRequired("lo")
	_ = cmd.MarkFlagRequired("hi")

	return cmd
}

func bracket[T any](e env[T]) error {
	lo, err := e.parse("lo", e.req.lo)
	if err != nil {
		return err
	}
	hi, err := e.parse("hi", e.req.hi)
	if err != nil {
		return err
	}

	br, err := e.solver.BracketRoots(e.p.Eval, lo, hi)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "[%s, %s]\n", e.format(br.Lo), e.format(br.Hi))

	return nil
}
