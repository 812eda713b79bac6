package chem_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/priyam/chem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultTable_PinnedMasses pins the masses every formula test depends on.
func TestDefaultTable_PinnedMasses(t *testing.T) {
	want := map[string]float64{
		"H": 1.008, "He": 4.0026, "Li": 6.94, "Be": 9.0122, "B": 10.81,
		"C": 12.011, "N": 14.007, "O": 15.999, "F": 18.998, "Ne": 20.180,
		"Na": 22.990, "Mg": 24.305, "Al": 26.982, "Si": 28.085, "P": 30.974,
		"S": 32.06, "Cl": 35.45, "K": 39.098, "Ca": 40.078, "Fe": 55.845,
		"Cu": 63.546, "Zn": 65.38, "Br": 79.904, "Ag": 107.8682, "I": 126.90447,
		"Ba": 137.327, "Au": 196.96657, "Hg": 200.59, "Pb": 207.2,
	}
	tbl := chem.DefaultTable()
	for sym, m := range want {
		got, ok := tbl.Mass(sym)
		require.True(t, ok, sym)
		assert.Equal(t, m, got, sym)
	}
}

// TestDefaultTable_Coverage holds all 118 elements and nothing else.
func TestDefaultTable_Coverage(t *testing.T) {
	tbl := chem.DefaultTable()
	assert.Equal(t, 118, tbl.Len())
	assert.True(t, tbl.Has("Og"))
	assert.False(t, tbl.Has("Xx"))
	assert.False(t, tbl.Has("h"))

	syms := tbl.Symbols()
	require.Len(t, syms, 118)
	assert.IsIncreasing(t, syms)
}

// TestNewTable_Validation rejects bad symbols and masses.
func TestNewTable_Validation(t *testing.T) {
	bad := []map[string]float64{
		{"": 1},
		{"h": 1},
		{"Abc": 1},
		{"HE": 1},
		{"H": 0},
		{"H": -1},
		{"H": math.NaN()},
		{"H": math.Inf(1)},
	}
	for _, m := range bad {
		_, err := chem.NewTable(m)
		assert.ErrorIs(t, err, chem.ErrInvalidTable, "%v", m)
	}

	tbl, err := chem.NewTable(map[string]float64{"X": 2})
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

// TestNewTable_CopiesInput ignores later changes to the source map.
func TestNewTable_CopiesInput(t *testing.T) {
	src := map[string]float64{"H": 1}
	tbl, err := chem.NewTable(src)
	require.NoError(t, err)

	src["H"] = 99
	src["He"] = 4
	m, _ := tbl.Mass("H")
	assert.Equal(t, 1.0, m)
	assert.False(t, tbl.Has("He"))
}

// TestExtend leaves the receiver untouched.
func TestExtend(t *testing.T) {
	base := chem.DefaultTable()
	ext, err := base.Extend(map[string]float64{"D": 2.014, "O": 16})
	require.NoError(t, err)

	assert.Equal(t, 119, ext.Len())
	o, _ := ext.Mass("O")
	assert.Equal(t, 16.0, o)

	o, _ = base.Mass("O")
	assert.Equal(t, 15.999, o)
	assert.False(t, base.Has("D"))

	_, err = base.Extend(map[string]float64{"dd": 1})
	assert.ErrorIs(t, err, chem.ErrInvalidTable)
}

// TestLoadTable covers TOML and YAML files with and without a base table.
func TestLoadTable(t *testing.T) {
	tomlTbl, err := chem.LoadTable(filepath.Join("testdata", "extra.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "T"}, tomlTbl.Symbols())

	yamlTbl, err := chem.LoadTable(filepath.Join("testdata", "extra.yaml"), chem.DefaultTable())
	require.NoError(t, err)
	assert.Equal(t, 119, yamlTbl.Len())
	o, _ := yamlTbl.Mass("O")
	assert.Equal(t, 16.0, o)

	m, err := chem.MolarMass("D2O", chem.WithTable(yamlTbl))
	require.NoError(t, err)
	assert.InDelta(t, 2*2.014+16, m, 1e-9)
}

// TestLoadTable_Errors covers unreadable, unsupported and invalid files.
func TestLoadTable_Errors(t *testing.T) {
	_, err := chem.LoadTable(filepath.Join("testdata", "missing.toml"), nil)
	assert.Error(t, err)

	_, err = chem.LoadTable(filepath.Join("testdata", "bad_symbol.yaml"), nil)
	assert.ErrorIs(t, err, chem.ErrInvalidTable)

	_, err = chem.LoadTable(filepath.Join("testdata", "empty.toml"), nil)
	assert.ErrorIs(t, err, chem.ErrInvalidTable)

	dir := t.TempDir()
	_, err = chem.LoadTable(filepath.Join(dir, "table.json"), nil)
	assert.Error(t, err)
}
