package chem_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/priyam/chem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// TestMolarMass_KnownCompounds checks textbook values.
func TestMolarMass_KnownCompounds(t *testing.T) {
	cases := []struct {
		formula string
		want    float64
	}{
		{"H2O", 2*1.008 + 15.999},
		{"C6H12O6", 6*12.011 + 12*1.008 + 6*15.999},
		{"Ca(OH)2", 40.078 + 2*(15.999+1.008)},
		{"Mg(NO3)2", 24.305 + 2*(14.007+3*15.999)},
		{"NaCl", 22.990 + 35.45},
		{"Co", 58.933},
		{"CO", 12.011 + 15.999},
		{"((OH)2)3", 3 * 2 * (15.999 + 1.008)},
		{"Al2(SO4)3", 2*26.982 + 3*(32.06+4*15.999)},
		{"H0", 0},
	}
	for _, tc := range cases {
		t.Run(tc.formula, func(t *testing.T) {
			got, err := chem.MolarMass(tc.formula)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tol)
		})
	}
}

// TestMolarMass_ReferenceValues pins the rounded figures callers rely on.
func TestMolarMass_ReferenceValues(t *testing.T) {
	h2o, _ := chem.MolarMass("H2O")
	assert.InDelta(t, 18.015, h2o, 1e-9)
	glucose, _ := chem.MolarMass("C6H12O6")
	assert.InDelta(t, 180.156, glucose, 1e-9)
	slaked, _ := chem.MolarMass("Ca(OH)2")
	assert.InDelta(t, 74.092, slaked, 1e-9)
	nitrate, _ := chem.MolarMass("Mg(NO3)2")
	assert.InDelta(t, 148.313, nitrate, 1e-9)
}

// TestMolarMass_DefaultCount returns the atomic mass untouched.
func TestMolarMass_DefaultCount(t *testing.T) {
	got, err := chem.MolarMass("Fe")
	require.NoError(t, err)
	assert.Equal(t, 55.845, got)
}

// TestMolarMass_Idempotent evaluates the same input twice.
func TestMolarMass_Idempotent(t *testing.T) {
	for _, f := range []string{"H2O", "Mg(NO3)2", "K4(Fe(CN)6)"} {
		a, errA := chem.MolarMass(f)
		b, errB := chem.MolarMass(f)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b, f)
	}
}

// TestMolarMass_Errors covers the failure taxonomy and reported positions.
func TestMolarMass_Errors(t *testing.T) {
	cases := []struct {
		name    string
		formula string
		want    error
		pos     int
		text    string
	}{
		{"unknown element", "Xx2", chem.ErrUnknownElement, 0, "Xx"},
		{"unknown inside group", "Ca(Qq)2", chem.ErrUnknownElement, 3, "Qq"},
		{"unclosed group", "(OH", chem.ErrUnmatchedParenthesis, 0, "("},
		{"unclosed inner group", "Ca((OH)2", chem.ErrUnmatchedParenthesis, 2, "("},
		{"stray closing paren", "OH)", chem.ErrUnmatchedParenthesis, 2, ")"},
		{"leading number", "2H2O", chem.ErrUnexpectedToken, 0, "2"},
		{"number after '('", "(2H)", chem.ErrUnexpectedToken, 1, "2"},
		{"empty group", "Ca()2", chem.ErrMalformedFormula, 2, "()"},
		{"whitespace", "H2 O", chem.ErrMalformedFormula, 2, " "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chem.MolarMass(tc.formula)
			require.ErrorIs(t, err, tc.want)

			var fe *chem.FormulaError
			require.True(t, errors.As(err, &fe), "want *FormulaError, got %T", err)
			assert.Equal(t, tc.pos, fe.Pos)
			assert.Equal(t, tc.text, fe.Text)
			assert.Contains(t, err.Error(), tc.formula)
		})
	}
}

// TestMolarMass_Empty rejects empty input in strict mode only.
func TestMolarMass_Empty(t *testing.T) {
	_, err := chem.MolarMass("")
	assert.ErrorIs(t, err, chem.ErrEmptyFormula)
	assert.Equal(t, chem.ErrEmptyFormula.Error(), err.Error())

	got, err := chem.MolarMass("", chem.WithLenient())
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestMolarMass_Lenient reproduces the permissive scanner.
func TestMolarMass_Lenient(t *testing.T) {
	// skipped characters
	got, err := chem.MolarMass(" H2 O ", chem.WithLenient())
	require.NoError(t, err)
	assert.InDelta(t, 18.015, got, tol)

	// stray ')' stops parsing; "Na" is ignored
	got, err = chem.MolarMass("OH)Na", chem.WithLenient())
	require.NoError(t, err)
	assert.InDelta(t, 15.999+1.008, got, tol)

	// empty group weighs nothing
	got, err = chem.MolarMass("Ca()2", chem.WithLenient())
	require.NoError(t, err)
	assert.InDelta(t, 40.078, got, tol)

	// unclosed group and unknown elements still fail
	_, err = chem.MolarMass("(OH", chem.WithLenient())
	assert.ErrorIs(t, err, chem.ErrUnmatchedParenthesis)
	_, err = chem.MolarMass("Xx", chem.WithLenient())
	assert.ErrorIs(t, err, chem.ErrUnknownElement)
	_, err = chem.MolarMass("2H", chem.WithLenient())
	assert.ErrorIs(t, err, chem.ErrUnexpectedToken)
}

// TestMolarMass_MaxDepth bounds nesting.
func TestMolarMass_MaxDepth(t *testing.T) {
	f := "((((H))))"

	_, err := chem.MolarMass(f, chem.WithMaxDepth(3))
	require.ErrorIs(t, err, chem.ErrNestingTooDeep)
	var fe *chem.FormulaError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 3, fe.Pos)

	got, err := chem.MolarMass(f, chem.WithMaxDepth(4))
	require.NoError(t, err)
	assert.Equal(t, 1.008, got)

	// 0 disables the limit
	deep := strings.Repeat("(", 200) + "H" + strings.Repeat(")", 200)
	_, err = chem.MolarMass(deep)
	assert.ErrorIs(t, err, chem.ErrNestingTooDeep)
	got, err = chem.MolarMass(deep, chem.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, 1.008, got)

	_, err = chem.MolarMass(f, chem.WithMaxDepth(-1))
	assert.ErrorIs(t, err, chem.ErrOptionViolation)
}

// TestMolarMass_CustomTable resolves symbols against a caller table.
func TestMolarMass_CustomTable(t *testing.T) {
	tbl, err := chem.DefaultTable().Extend(map[string]float64{"D": 2.014})
	require.NoError(t, err)

	got, err := chem.MolarMass("D2O", chem.WithTable(tbl))
	require.NoError(t, err)
	assert.InDelta(t, 2*2.014+15.999, got, tol)

	_, err = chem.MolarMass("D2O")
	assert.ErrorIs(t, err, chem.ErrUnknownElement)

	// nil table keeps the default
	got, err = chem.MolarMass("H2O", chem.WithTable(nil))
	require.NoError(t, err)
	assert.InDelta(t, 18.015, got, tol)
}

// TestGramsMolesConversion round-trips through the molar mass.
func TestGramsMolesConversion(t *testing.T) {
	n, err := chem.GramsToMoles(36.03, "H2O")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, n, tol)

	g, err := chem.MolesToGrams(0.5, "C6H12O6")
	require.NoError(t, err)
	assert.InDelta(t, 90.078, g, tol)

	_, err = chem.GramsToMoles(1, "H0")
	assert.ErrorIs(t, err, chem.ErrZeroMolarMass)

	_, err = chem.GramsToMoles(1, "Xx")
	assert.ErrorIs(t, err, chem.ErrUnknownElement)
	_, err = chem.MolesToGrams(1, "(H")
	assert.ErrorIs(t, err, chem.ErrUnmatchedParenthesis)
}

// TestIdealGasVolume checks one mole at STP-like conditions.
func TestIdealGasVolume(t *testing.T) {
	v, err := chem.IdealGasVolume(1, 273.15, 101325)
	require.NoError(t, err)
	assert.InDelta(t, 0.022414, v, 1e-6)

	_, err = chem.IdealGasVolume(1, 300, 0)
	assert.ErrorIs(t, err, chem.ErrNonPositivePressure)
}

// TestParseComposition distributes group multipliers over atoms.
func TestParseComposition(t *testing.T) {
	c, err := chem.ParseComposition("Mg(NO3)2")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Mg": 1, "N": 2, "O": 6}, c.Atoms)
	assert.Equal(t, 9, c.TotalAtoms())

	m, _ := chem.MolarMass("Mg(NO3)2")
	assert.Equal(t, m, c.Mass)

	rows := c.Elements()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Mg", "N", "O"}, []string{rows[0].Symbol, rows[1].Symbol, rows[2].Symbol})
	assert.InDelta(t, 6*15.999, rows[2].Mass, tol)

	total := 0.0
	for _, r := range rows {
		total += r.Percent
	}
	assert.InDelta(t, 100.0, total, 1e-9)

	_, err = chem.ParseComposition("Xx")
	assert.ErrorIs(t, err, chem.ErrUnknownElement)
}

// TestParseComposition_CountOverflow rejects atom counts that exceed int
// instead of wrapping them.
func TestParseComposition_CountOverflow(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		pos     int
		text    string
	}{
		{"group multiplier", "(H9999999999)9999999999", 13, "9999999999"},
		{"nested groups", "((H9999999999)9999999999)9", 14, "9999999999"},
		{"repeated element", "H9000000000000000000H9000000000000000000", 21, "9000000000000000000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chem.ParseComposition(tc.formula)
			require.ErrorIs(t, err, chem.ErrMalformedFormula)

			var fe *chem.FormulaError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.pos, fe.Pos)
			assert.Equal(t, tc.text, fe.Text)

			_, err = chem.MolarMass(tc.formula)
			assert.ErrorIs(t, err, chem.ErrMalformedFormula, "MolarMass fails where ParseComposition fails")
		})
	}

	c, err := chem.ParseComposition("(H999999)999999")
	require.NoError(t, err)
	assert.Equal(t, 999999*999999, c.Atoms["H"])
	require.Len(t, c.Elements(), 1)
	assert.InDelta(t, 100.0, c.Elements()[0].Percent, 1e-9)
}

// TestParseComposition_Weightless leaves percentages at zero.
func TestParseComposition_Weightless(t *testing.T) {
	c, err := chem.ParseComposition("H0")
	require.NoError(t, err)
	rows := c.Elements()
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Percent)
}
