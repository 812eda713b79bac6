package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/priyam/chem"
)

var gasCmd = &cobra.Command{
	Use:   "gas <moles> <kelvin> <pascal>",
	Short: "Ideal gas volume V = nRT/P",
	Long: `Prints the volume of n moles of an ideal gas.

Example (one mole at STP):
  priyam gas 1 273.15 101325`,
	Args: cobra.ExactArgs(3),
	RunE: runGas,
}

func init() {
	rootCmd.AddCommand(gasCmd)
}

func runGas(cmd *cobra.Command, args []string) error {
	vals, err := parseFloats(args)
	if err != nil {
		return err
	}
	v, err := chem.IdealGasVolume(vals[0], vals[1], vals[2])
	if err != nil {
		return err
	}
	logger.Debug("ideal gas", "n", vals[0], "T", vals[1], "P", vals[2], "V", v)

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s %s\n",
		labelStyle.Render("V ="), valueStyle.Render(fixed(v*1000)+" L"),
		labelStyle.Render("="), valueStyle.Render(fmt.Sprintf("%g m³", v)))
	return nil
}
