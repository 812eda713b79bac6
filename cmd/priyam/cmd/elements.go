package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/priyam/chem"
)

var elementsCmd = &cobra.Command{
	Use:   "elements [symbol...]",
	Short: "List atomic masses from the active element table",
	Long: `Lists every element of the active table, or only the given symbols.

The table is the built-in one, extended by --table or [chemistry].table.

Examples:
  priyam elements
  priyam elements Fe Cu
  priyam --table isotopes.yaml elements D`,
	RunE: runElements,
}

func init() {
	rootCmd.AddCommand(elementsCmd)
}

func runElements(cmd *cobra.Command, args []string) error {
	tbl := activeTable()
	symbols := args
	if len(symbols) == 0 {
		symbols = tbl.Symbols()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(labelStyle).
		Headers("Symbol", "Atomic mass").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, sym := range symbols {
		m, ok := tbl.Mass(sym)
		if !ok {
			return fmt.Errorf("%w: %q", chem.ErrUnknownElement, sym)
		}
		t.Row(sym, strconv.FormatFloat(m, 'f', -1, 64))
	}
	logger.Debug("listing elements", "count", len(symbols), "table_size", tbl.Len())

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

// activeTable returns the table the formula options were built with.
func activeTable() *chem.ElementTable {
	o := chem.DefaultOptions()
	for _, opt := range chemOpts {
		opt(&o)
	}
	return o.Table
}
