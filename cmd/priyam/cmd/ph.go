package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/priyam/chem"
)

var phCmd = &cobra.Command{
	Use:   "ph",
	Short: "pH of acids, bases and buffers",
	Long: `Computes pH at 25 °C.

Examples:
  priyam ph acid 0.01
  priyam ph base 0.001
  priyam ph weak 0.1 1.8e-5
  priyam ph buffer 4.76 0.1 0.1`,
}

var phAcidCmd = &cobra.Command{
	Use:   "acid <concentration>",
	Short: "Strong monoprotic acid",
	Args:  cobra.ExactArgs(1),
	RunE: phRunner(func(v []float64) (float64, error) {
		return chem.PHStrongAcid(v[0])
	}),
}

var phBaseCmd = &cobra.Command{
	Use:   "base <concentration>",
	Short: "Strong monohydroxide base",
	Args:  cobra.ExactArgs(1),
	RunE: phRunner(func(v []float64) (float64, error) {
		return chem.PHStrongBase(v[0])
	}),
}

var phWeakCmd = &cobra.Command{
	Use:   "weak <concentration> <ka>",
	Short: "Weak monoprotic acid",
	Args:  cobra.ExactArgs(2),
	RunE: phRunner(func(v []float64) (float64, error) {
		return chem.WeakAcidPH(v[0], v[1])
	}),
}

var phBufferCmd = &cobra.Command{
	Use:   "buffer <pka> <base> <acid>",
	Short: "Henderson-Hasselbalch buffer",
	Args:  cobra.ExactArgs(3),
	RunE: phRunner(func(v []float64) (float64, error) {
		return chem.HendersonHasselbalch(v[0], v[1], v[2])
	}),
}

func init() {
	rootCmd.AddCommand(phCmd)
	phCmd.AddCommand(phAcidCmd, phBaseCmd, phWeakCmd, phBufferCmd)
}

// phRunner parses every positional argument as a float and prints the pH
// computed by fn.
func phRunner(fn func([]float64) (float64, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		vals, err := parseFloats(args)
		if err != nil {
			return err
		}
		ph, err := fn(vals)
		if err != nil {
			return err
		}
		logger.Debug("pH computed", "command", cmd.Name(), "args", vals, "pH", ph)

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", labelStyle.Render("pH"), valueStyle.Render(fixed(ph)))
		return nil
	}
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		vals[i] = v
	}
	return vals, nil
}
