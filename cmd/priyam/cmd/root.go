package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/priyam/chem"
	"github.com/katalvlaran/priyam/internal/config"
)

var (
	cfgFile   string
	verbose   bool
	lenient   bool
	tablePath string
)

// Resolved once per invocation by setup.
var (
	appCfg   = config.Default()
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
	chemOpts []chem.Option
)

var rootCmd = &cobra.Command{
	Use:   "priyam",
	Short: "priyam - chemistry and science calculator",
	Long: `priyam evaluates chemical formulas and common science formulas.

Formulas use element symbols, counts and nested parentheses:
  H2O, C6H12O6, Ca(OH)2, Mg(NO3)2, K4(Fe(CN)6)

Commands:
  mass         molar mass of one or more formulas
  composition  element breakdown and mass percentages
  convert      grams <-> moles
  gas          ideal gas volume
  ph           pH of acids, bases and buffers
  elements     the element table in use
  repl         interactive calculator`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $PRIYAM_CONFIG, ./priyam.toml, ~/.config/priyam/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "skip unknown characters and accept empty groups")
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "TOML or YAML element table merged over the built-in one")
}

// setup resolves configuration, logging and formula options for the
// command about to run.
func setup(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}
	appCfg = cfg
	logger = newLogger(cmd.ErrOrStderr(), cfg.General, verbose)
	if path != "" {
		logger.Debug("config loaded", "path", path)
	} else {
		logger.Debug("no config file found, using defaults")
	}

	chemOpts, err = buildChemOptions(cfg.Chemistry)
	return err
}

// buildChemOptions turns the chemistry settings and flags into parser
// options. Flags win over the file.
func buildChemOptions(c config.ChemistryConfig) ([]chem.Option, error) {
	table := chem.DefaultTable()
	path := c.Table
	if tablePath != "" {
		path = tablePath
	}
	if path != "" {
		var err error
		table, err = chem.LoadTable(path, table)
		if err != nil {
			return nil, err
		}
		logger.Debug("element table loaded", "path", path, "elements", table.Len())
	}

	opts := []chem.Option{chem.WithTable(table), chem.WithMaxDepth(c.MaxDepth)}
	if lenient || c.Lenient {
		opts = append(opts, chem.WithLenient())
	}
	logger.Debug("formula options", "lenient", lenient || c.Lenient, "max_depth", c.MaxDepth)

	return opts, nil
}
