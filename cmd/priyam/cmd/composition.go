package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/priyam/chem"
)

var compositionCmd = &cobra.Command{
	Use:     "composition <formula>",
	Aliases: []string{"comp"},
	Short:   "Show the element breakdown of a formula",
	Long: `Prints atom counts, mass contributions and mass percentages per element.

Example:
  priyam composition "Mg(NO3)2"`,
	Args: cobra.ExactArgs(1),
	RunE: runComposition,
}

func init() {
	rootCmd.AddCommand(compositionCmd)
}

func runComposition(cmd *cobra.Command, args []string) error {
	c, err := chem.ParseComposition(args[0], chemOpts...)
	if err != nil {
		logger.Debug("evaluation failed", "formula", args[0], "error", err)
		return err
	}
	logger.Debug("evaluated", "formula", c.Formula, "mass", c.Mass, "elements", len(c.Atoms))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(labelStyle).
		Headers("Element", "Atoms", "Mass (g/mol)", "Mass %").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, e := range c.Elements() {
		t.Row(e.Symbol, strconv.Itoa(e.Count), fixed(e.Mass), strconv.FormatFloat(e.Percent, 'f', 2, 64))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s  %s\n",
		formulaStyle.Render(c.Formula),
		valueStyle.Render(fixed(c.Mass)+" g/mol"),
		labelStyle.Render(fmt.Sprintf("%d atoms", c.TotalAtoms())))
	fmt.Fprintln(out, t.Render())

	return nil
}
