package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/priyam/chem"
)

var massCmd = &cobra.Command{
	Use:   "mass <formula>...",
	Short: "Print the molar mass of formulas",
	Long: `Prints the molar mass in g/mol of each formula.

Examples:
  priyam mass H2O
  priyam mass "Ca(OH)2" C6H12O6
  priyam --lenient mass "H2 O"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMass,
}

func init() {
	rootCmd.AddCommand(massCmd)
}

func runMass(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, formula := range args {
		m, err := chem.MolarMass(formula, chemOpts...)
		if err != nil {
			logger.Debug("evaluation failed", "formula", formula, "error", err)
			return err
		}
		logger.Debug("evaluated", "formula", formula, "mass", m)
		fmt.Fprintf(out, "%s  %s\n", formulaStyle.Render(formula), valueStyle.Render(fixed(m)+" g/mol"))
	}

	return nil
}
