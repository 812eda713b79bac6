package cmd

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorMuted     = lipgloss.Color("#6B7280")
)

var (
	formulaStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// fixed formats v with the configured number of decimals.
func fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', appCfg.Chemistry.Precision, 64)
}
