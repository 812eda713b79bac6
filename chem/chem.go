package chem

import (
	"fmt"
	"sort"
)

// GasConstant is the molar gas constant R in J/(mol·K).
const GasConstant = 8.3145

// MolarMass returns the mass in g/mol of formula, e.g. "H2O", "Ca(OH)2"
// or "C6H12O6".
//
// Element masses are summed with their subscripts (default 1); a
// parenthesized group is evaluated recursively and scaled by the number
// after its ')' (default 1). Arithmetic is float64 without rounding.
//
// Errors (all as *FormulaError, see errors.Is):
//   - ErrUnknownElement       symbol missing from the table
//   - ErrUnmatchedParenthesis '(' without ')' or, in strict mode, ')' without '('
//   - ErrUnexpectedToken      number with nothing to multiply
//   - ErrMalformedFormula     character outside the grammar, empty group (strict)
//   - ErrEmptyFormula         empty input (strict)
//   - ErrNestingTooDeep       groups nested beyond MaxDepth
//
// Invalid options yield ErrOptionViolation.
func MolarMass(formula string, opts ...Option) (float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	t, err := evaluate(formula, o)
	if err != nil {
		return 0, err
	}

	return t.mass, nil
}

// GramsToMoles converts a mass in grams of formula to moles: n = m / M.
func GramsToMoles(massG float64, formula string, opts ...Option) (float64, error) {
	m, err := MolarMass(formula, opts...)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return 0, fmt.Errorf("%w: %q", ErrZeroMolarMass, formula)
	}

	return massG / m, nil
}

// MolesToGrams converts an amount in moles of formula to grams: m = n · M.
func MolesToGrams(moles float64, formula string, opts ...Option) (float64, error) {
	m, err := MolarMass(formula, opts...)
	if err != nil {
		return 0, err
	}

	return moles * m, nil
}

// IdealGasVolume returns V = nRT/P in m³ for n moles at T kelvin and P pascal.
func IdealGasVolume(n, tempK, pressurePa float64) (float64, error) {
	if pressurePa <= 0 {
		return 0, fmt.Errorf("%w: got %v Pa", ErrNonPositivePressure, pressurePa)
	}

	return n * GasConstant * tempK / pressurePa, nil
}

// Composition is the element breakdown of a formula.
type Composition struct {
	Formula string
	Mass    float64        // molar mass, identical to MolarMass(Formula)
	Atoms   map[string]int // atom count per element with group multipliers applied
	table   *ElementTable
}

// ElementShare is one row of a Composition.
type ElementShare struct {
	Symbol  string
	Count   int
	Mass    float64 // Count × atomic mass
	Percent float64 // share of the molar mass, 0..100
}

// ParseComposition evaluates formula and returns its element breakdown.
// It fails exactly where MolarMass fails.
func ParseComposition(formula string, opts ...Option) (Composition, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Composition{}, err
	}
	t, err := evaluate(formula, o)
	if err != nil {
		return Composition{}, err
	}

	return Composition{Formula: formula, Mass: t.mass, Atoms: t.atoms, table: o.Table}, nil
}

// Elements returns one row per element, ordered by symbol.
// Percent is 0 for every row when the formula weighs nothing.
func (c Composition) Elements() []ElementShare {
	syms := make([]string, 0, len(c.Atoms))
	for sym := range c.Atoms {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	rows := make([]ElementShare, 0, len(syms))
	for _, sym := range syms {
		atomic, _ := c.table.Mass(sym)
		row := ElementShare{Symbol: sym, Count: c.Atoms[sym], Mass: atomic * float64(c.Atoms[sym])}
		if c.Mass > 0 {
			row.Percent = row.Mass / c.Mass * 100
		}
		rows = append(rows, row)
	}

	return rows
}

// TotalAtoms returns the number of atoms in one formula unit.
func (c Composition) TotalAtoms() int {
	total := 0
	for _, n := range c.Atoms {
		total += n
	}

	return total
}
