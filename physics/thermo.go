package physics

import (
	"fmt"
	"math"
)

// WorkIsobaric returns W = P·ΔV.
func WorkIsobaric(pressure, deltaV float64) float64 {
	return pressure * deltaV
}

// WorkIsothermal returns W = n·R·T·ln(V2/V1) for an ideal gas.
func WorkIsothermal(n, temperature, v1, v2 float64) (float64, error) {
	if v1 <= 0 || v2 <= 0 {
		return 0, fmt.Errorf("%w: V1=%g V2=%g", ErrNonPositiveVolume, v1, v2)
	}
	return n * GasConstant * temperature * math.Log(v2/v1), nil
}

// InternalEnergyChange returns ΔU = n·Cv·ΔT for an ideal gas.
func InternalEnergyChange(n, cv, deltaT float64) float64 {
	return n * cv * deltaT
}

// HeatAdded returns Q = ΔU + W, with W the work done by the system.
func HeatAdded(deltaU, workBySystem float64) float64 {
	return deltaU + workBySystem
}
