package physics

import "math"

// CoulombForce returns the magnitude k·|q1·q2|/r² in newtons.
func CoulombForce(q1, q2, r float64) (float64, error) {
	if r == 0 {
		return 0, ErrZeroDistance
	}
	return CoulombConstant * math.Abs(q1*q2) / (r * r), nil
}

// ElectricField returns k·|q|/r² for a point charge, in N/C.
func ElectricField(q, r float64) (float64, error) {
	if r == 0 {
		return 0, ErrZeroDistance
	}
	return CoulombConstant * math.Abs(q) / (r * r), nil
}

// MagneticFieldWire returns μ0·I/(2π·r) around a long straight wire, in tesla.
func MagneticFieldWire(current, r float64) (float64, error) {
	if r == 0 {
		return 0, ErrZeroDistance
	}
	return VacuumPermeability * current / (2 * math.Pi * r), nil
}

// LorentzForce returns |q|·v·B·sin(θ) for a charge moving through a field.
func LorentzForce(q, v, b, theta float64) float64 {
	return math.Abs(q) * v * b * math.Sin(theta)
}
