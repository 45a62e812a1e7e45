// Package cli implements the polycalc command: read two polynomials, print
// their sum and product, evaluate both at x and optionally time Add and
// Multiply.
package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Main is the polycalc root command, bound to the OS filesystem.
var Main = NewCommand(afero.NewOsFs())

// NewCommand builds a polycalc command that opens --input and --config
// through fs. Stdin/stdout/stderr come from cobra (SetIn/SetOut/SetErr).
func NewCommand(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "polycalc",
		Short: "polycalc adds, multiplies and evaluates two sparse polynomials.",
		Long: "`polycalc` reads two polynomials in canonical form (a term count followed by that many\n" +
			"coefficient/exponent pairs), prints their sum and product, and evaluates both at x.\n" +
			"Prompts are shown when stdin is a terminal.",
		Example: `echo "2 2 0 3 1  2 5 1 1 2" | polycalc --x 1

polycalc --input polys.txt --format canonical --time --repeat 1000`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, fs)
	}
	registerFlags(cmd.Flags())

	return cmd
}

func run(cmd *cobra.Command, fs afero.Fs) error {
	cfg, err := loadConfig(fs, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFmt)
	if err != nil {
		return err
	}

	r, closeInput, err := openInput(fs, cfg.Input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closeInput()

	prompt := cmd.ErrOrStderr()
	if cfg.Input != "" || !isTerminal(cmd.InOrStdin()) {
		prompt = nil
	}
	in, err := readInputs(r, cfg, prompt)
	if err != nil {
		return err
	}
	logger.Debug("read inputs", "p_terms", in.P.Len(), "q_terms", in.Q.Len(), "x", in.X)

	res := compute(in)
	logger.Info("computed", "sum_terms", res.Sum.Len(), "product_terms", res.Product.Len())

	if cfg.Time {
		res.Timings = timeOps(in.P, in.Q, cfg.Repeat)
		for _, t := range res.Timings {
			logger.Debug("timed", "op", t.Op, "runs", t.Runs, "total", t.Total)
		}
	}

	if cfg.Format == formatCanonical {
		return writeCanonical(cmd.OutOrStdout(), res)
	}

	return writeTable(cmd.OutOrStdout(), res)
}
