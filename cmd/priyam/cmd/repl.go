package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/priyam/internal/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive molar-mass calculator",
	Long: `Starts a terminal calculator that evaluates each formula on Enter.

Keys:
  Enter     evaluate
  Up        recall the previous formula
  Ctrl+L    clear history
  Esc       quit`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	logger.Debug("starting repl", "precision", appCfg.Chemistry.Precision)
	return tui.Run(appCfg.Chemistry.Precision, chemOpts...)
}
