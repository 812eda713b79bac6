package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/priyam/chem"
)

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert <formula> <amount>",
	Short: "Convert between grams and moles",
	Long: `Converts an amount of a substance using its molar mass.

With --to moles (default) the amount is in grams; with --to grams it is in moles.

Examples:
  priyam convert H2O 36.03
  priyam convert NaCl 2 --to grams`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertTo, "to", "moles", "target unit: moles or grams")
}

func runConvert(cmd *cobra.Command, args []string) error {
	formula := args[0]
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}

	var result float64
	var unit string
	switch convertTo {
	case "moles", "mol":
		result, err = chem.GramsToMoles(amount, formula, chemOpts...)
		unit = "mol"
	case "grams", "g":
		result, err = chem.MolesToGrams(amount, formula, chemOpts...)
		unit = "g"
	default:
		return fmt.Errorf("unknown target unit %q (want moles or grams)", convertTo)
	}
	if err != nil {
		return err
	}
	logger.Debug("converted", "formula", formula, "amount", amount, "to", unit, "result", result)

	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", formulaStyle.Render(formula), valueStyle.Render(fixed(result)+" "+unit))
	return nil
}
