// Package tui implements the interactive molar-mass calculator.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/priyam/chem"
)

// maxHistory bounds the number of evaluations kept on screen.
const maxHistory = 50

// Entry is one evaluated line.
type Entry struct {
	Formula string
	Mass    float64
	Err     error
}

// Model is the REPL state.
type Model struct {
	input     textinput.Model
	history   []Entry
	recall    int
	opts      []chem.Option
	precision int
	width     int
}

// NewModel creates a REPL that evaluates formulas with opts and prints
// masses with precision decimals.
func NewModel(precision int, opts ...chem.Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Formula, e.g. Ca(OH)2"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return Model{
		input:     ti,
		opts:      opts,
		precision: precision,
		recall:    -1,
	}
}

// History returns the evaluated entries, oldest first.
func (m Model) History() []Entry { return m.history }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			formula := strings.TrimSpace(m.input.Value())
			if formula == "" {
				return m, nil
			}
			m.evaluate(formula)
			m.input.Reset()
			m.recall = -1
			return m, nil

		case "ctrl+l":
			m.history = nil
			m.recall = -1
			return m, nil

		case "up":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.recall < 0 {
				m.recall = len(m.history)
			}
			if m.recall > 0 {
				m.recall--
			}
			m.input.SetValue(m.history[m.recall].Formula)
			m.input.CursorEnd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) evaluate(formula string) {
	mass, err := chem.MolarMass(formula, m.opts...)
	m.history = append(m.history, Entry{Formula: formula, Mass: mass, Err: err})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("priyam · molar mass"))
	b.WriteString("\n")

	for _, e := range m.history {
		b.WriteString(FormulaStyle.Render(e.Formula))
		b.WriteString("  ")
		if e.Err != nil {
			b.WriteString(ErrorStyle.Render(e.Err.Error()))
		} else {
			b.WriteString(MassStyle.Render(fmt.Sprintf("%.*f g/mol", m.precision, e.Mass)))
		}
		b.WriteString("\n")
	}

	b.WriteString(BoxStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter: evaluate · ↑: recall · ctrl+l: clear · esc: quit"))

	return b.String()
}

// Run starts the REPL on the terminal and blocks until the user quits.
func Run(precision int, opts ...chem.Option) error {
	p := tea.NewProgram(NewModel(precision, opts...))
	_, err := p.Run()
	return err
}
