// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroot/internal/config"
	"github.com/katalvlaran/lvroot/numeric"
	"github.com/katalvlaran/lvroot/poly"
)

func newPolyCmd(st *state) *cobra.Command {
	var (
		noAdjust  bool
		forceReal bool
		eps       float64
	)

	cmd := &cobra.Command{
		Use:   "poly -- a b c [d [e]]",
		Short: "Closed-form roots of a quadratic, cubic or quartic",
		Long: `poly solves a·x² + b·x + c, a·x³ + … or a·x⁴ + … = 0 algebraically and
prints one root per line. Roots whose imaginary (or real) part is negligible
are snapped onto the axis unless --no-adjust is given.`,
		Args: cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("eps") {
				st.cfg.Epsilon = eps
			}
			if noAdjust {
				st.cfg.Adjust = false
			}
			if err := st.cfg.Validate(); err != nil {
				return err
			}
			if st.cfg.Number != config.NumberFloat {
				st.log.Warn("closed forms are evaluated in complex128", "number", st.cfg.Number)
			}

			ar := numeric.Float64{}
			coeffs := make([]complex128, len(args))
			for i, s := range args {
				v, err := ar.Parse(s)
				if err != nil {
					return fmt.Errorf("coefficient %d: %w", i, err)
				}
				coeffs[i] = complex(v, 0)
			}

			opts := []poly.Option{poly.WithAdjust(st.cfg.Adjust), poly.WithEpsilon(st.cfg.Epsilon)}
			if forceReal {
				opts = append(opts, poly.WithForceReal())
			}
			roots, err := poly.Solve(coeffs, opts...)
			if err != nil {
				return err
			}
			for _, r := range roots {
				fmt.Fprintln(cmd.OutOrStdout(), formatComplex(r))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&noAdjust, "no-adjust", false, "keep tiny off-axis components")
	cmd.Flags().BoolVar(&forceReal, "force-real", false, "print real parts only")
	cmd.Flags().Float64Var(&eps, "eps", poly.DefaultEpsilon, "snapping threshold")

	return cmd
}
