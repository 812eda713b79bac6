package chem

import (
	"fmt"
	"math"
)

// WaterIonProduct is Kw at 25 °C.
const WaterIonProduct = 1.0e-14

// HendersonHasselbalch returns the pH of a buffer: pKa + log10([base]/[acid]).
// Concentrations are treated as activities.
func HendersonHasselbalch(pKa, baseConc, acidConc float64) (float64, error) {
	if baseConc <= 0 || acidConc <= 0 {
		return 0, fmt.Errorf("%w: base=%v acid=%v", ErrNonPositiveConcentration, baseConc, acidConc)
	}

	return pKa + math.Log10(baseConc/acidConc), nil
}

// PHStrongAcid returns the pH of a fully dissociated monoprotic acid, [H+] = c.
func PHStrongAcid(c float64) (float64, error) {
	if c <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNonPositiveConcentration, c)
	}

	return -math.Log10(c), nil
}

// PHStrongBase returns the pH of a fully dissociated monoprotic base,
// [OH-] = c and [H+] = Kw / c.
func PHStrongBase(c float64) (float64, error) {
	if c <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNonPositiveConcentration, c)
	}

	return -math.Log10(WaterIonProduct / c), nil
}

// WeakAcidPH approximates the pH of a weak monoprotic acid with initial
// concentration c and dissociation constant ka, assuming [H+] ≪ c so
// that [H+] ≈ sqrt(ka · c).
func WeakAcidPH(c, ka float64) (float64, error) {
	if c <= 0 || ka <= 0 {
		return 0, fmt.Errorf("%w: c=%v ka=%v", ErrNonPositiveConcentration, c, ka)
	}

	return -math.Log10(math.Sqrt(ka * c)), nil
}
