package chem

import (
	"fmt"
	"math"
	"sort"
)

// ElementTable maps element symbols to atomic masses in g/mol.
// A table is immutable once built, so one value may be shared by any
// number of goroutines without locking.
type ElementTable struct {
	masses map[string]float64
}

// NewTable builds a table from masses. Every key must match [A-Z][a-z]?
// and every mass must be finite and positive, otherwise ErrInvalidTable is
// returned. The map is copied; later changes to it are not observed.
func NewTable(masses map[string]float64) (*ElementTable, error) {
	t := &ElementTable{masses: make(map[string]float64, len(masses))}
	for sym, m := range masses {
		if err := validateEntry(sym, m); err != nil {
			return nil, err
		}
		t.masses[sym] = m
	}

	return t, nil
}

// Extend returns a new table holding t's entries overridden and
// supplemented by extra. t itself is left untouched.
func (t *ElementTable) Extend(extra map[string]float64) (*ElementTable, error) {
	merged := make(map[string]float64, len(t.masses)+len(extra))
	for sym, m := range t.masses {
		merged[sym] = m
	}
	for sym, m := range extra {
		merged[sym] = m
	}

	return NewTable(merged)
}

// Mass returns the atomic mass of symbol and whether it is known.
func (t *ElementTable) Mass(symbol string) (float64, bool) {
	m, ok := t.masses[symbol]
	return m, ok
}

// Has reports whether symbol is in the table.
func (t *ElementTable) Has(symbol string) bool {
	_, ok := t.masses[symbol]
	return ok
}

// Len returns the number of elements.
func (t *ElementTable) Len() int { return len(t.masses) }

// Symbols returns all symbols in lexical order.
func (t *ElementTable) Symbols() []string {
	out := make([]string, 0, len(t.masses))
	for sym := range t.masses {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// DefaultTable returns the built-in periodic table.
func DefaultTable() *ElementTable { return defaultTable }

var defaultTable = mustTable(standardWeights)

func mustTable(masses map[string]float64) *ElementTable {
	t, err := NewTable(masses)
	if err != nil {
		panic(err)
	}
	return t
}

func validateEntry(sym string, m float64) error {
	if !validSymbol(sym) {
		return fmt.Errorf("%w: bad symbol %q", ErrInvalidTable, sym)
	}
	if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return fmt.Errorf("%w: mass of %s must be positive and finite, got %v", ErrInvalidTable, sym, m)
	}

	return nil
}

// validSymbol reports whether s matches [A-Z][a-z]?.
func validSymbol(s string) bool {
	switch len(s) {
	case 1:
		return isUpper(s[0])
	case 2:
		return isUpper(s[0]) && isLower(s[1])
	default:
		return false
	}
}

// standardWeights holds conventional atomic weights. Elements without a
// standard weight carry the mass number of their longest-lived isotope.
var standardWeights = map[string]float64{
	"H": 1.008, "He": 4.0026, "Li": 6.94, "Be": 9.0122, "B": 10.81,
	"C": 12.011, "N": 14.007, "O": 15.999, "F": 18.998, "Ne": 20.180,
	"Na": 22.990, "Mg": 24.305, "Al": 26.982, "Si": 28.085, "P": 30.974,
	"S": 32.06, "Cl": 35.45, "Ar": 39.948, "K": 39.098, "Ca": 40.078,
	"Sc": 44.956, "Ti": 47.867, "V": 50.942, "Cr": 51.996, "Mn": 54.938,
	"Fe": 55.845, "Co": 58.933, "Ni": 58.693, "Cu": 63.546, "Zn": 65.38,
	"Ga": 69.723, "Ge": 72.630, "As": 74.922, "Se": 78.971, "Br": 79.904,
	"Kr": 83.798, "Rb": 85.468, "Sr": 87.62, "Y": 88.906, "Zr": 91.224,
	"Nb": 92.906, "Mo": 95.95, "Tc": 98, "Ru": 101.07, "Rh": 102.91,
	"Pd": 106.42, "Ag": 107.8682, "Cd": 112.41, "In": 114.82, "Sn": 118.71,
	"Sb": 121.76, "Te": 127.60, "I": 126.90447, "Xe": 131.29, "Cs": 132.91,
	"Ba": 137.327, "La": 138.91, "Ce": 140.12, "Pr": 140.91, "Nd": 144.24,
	"Pm": 145, "Sm": 150.36, "Eu": 151.96, "Gd": 157.25, "Tb": 158.93,
	"Dy": 162.50, "Ho": 164.93, "Er": 167.26, "Tm": 168.93, "Yb": 173.05,
	"Lu": 174.97, "Hf": 178.49, "Ta": 180.95, "W": 183.84, "Re": 186.21,
	"Os": 190.23, "Ir": 192.22, "Pt": 195.08, "Au": 196.96657, "Hg": 200.59,
	"Tl": 204.38, "Pb": 207.2, "Bi": 208.98, "Po": 209, "At": 210,
	"Rn": 222, "Fr": 223, "Ra": 226, "Ac": 227, "Th": 232.04,
	"Pa": 231.04, "U": 238.03, "Np": 237, "Pu": 244, "Am": 243,
	"Cm": 247, "Bk": 247, "Cf": 251, "Es": 252, "Fm": 257,
	"Md": 258, "No": 259, "Lr": 266, "Rf": 267, "Db": 268,
	"Sg": 269, "Bh": 270, "Hs": 269, "Mt": 278, "Ds": 281,
	"Rg": 282, "Cn": 285, "Nh": 286, "Fl": 289, "Mc": 290,
	"Lv": 293, "Ts": 294, "Og": 294,
}
