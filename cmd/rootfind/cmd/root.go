// SPDX-License-Identifier: MIT

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroot/internal/config"
)

// state is shared by every subcommand of one invocation.
type state struct {
	cfgFile   string
	verbose   bool
	number    string
	precision uint
	tol       string
	maxit     int

	cfg config.Config
	log *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	rootCmd := &cobra.Command{
		Use:   "rootfind",
		Short: "Find real roots of polynomials",
		Long: `rootfind locates roots of a polynomial given by its coefficients,
highest power first. Put "--" before the coefficients so that negative
values are not read as flags:

  rootfind scan --from 0 --to 10 -- 1 -6 11 -6

Commands:
  poly     - closed-form roots of degree 2, 3 and 4
  scan     - every root the subdivision grid can see
  solve    - refine one bracketed root with a chosen method
  bracket  - widen an interval until it brackets a root`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.load(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&st.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.StringVar(&st.number, "number", config.NumberFloat, "arithmetic: float, bigfloat, rat or decimal")
	pf.UintVar(&st.precision, "precision", 0, "bits for bigfloat/rat, digits for decimal (0: backend default)")
	pf.StringVar(&st.tol, "tol", "", "tolerance literal, e.g. 1e-40 (default: per method)")
	pf.IntVar(&st.maxit, "maxit", 0, "iteration cap (default: per method)")
	pf.BoolVarP(&st.verbose, "verbose", "v", false, "trace every iteration to stderr")

	rootCmd.AddCommand(newPolyCmd(st), newScanCmd(st), newSolveCmd(st), newBracketCmd(st))

	return rootCmd
}

// Execute runs rootfind with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// load resolves the configuration: defaults, then the file, then flags.
func (st *state) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if st.cfgFile != "" {
		var err error
		if cfg, err = config.Load(st.cfgFile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("number") {
		cfg.Number = st.number
	}
	if flags.Changed("precision") {
		cfg.Precision = st.precision
	}
	if flags.Changed("tol") {
		cfg.Tolerance = st.tol
	}
	if flags.Changed("maxit") {
		cfg.MaxIter = st.maxit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	st.cfg = cfg

	level := slog.LevelWarn
	if st.verbose {
		level = slog.LevelDebug
	}
	st.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}
