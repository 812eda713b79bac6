package physics

// Force returns F = m·a.
func Force(mass, acceleration float64) float64 { return mass * acceleration }

// Weight returns W = m·g. Pass StandardGravity for Earth.
func Weight(mass, g float64) float64 { return mass * g }

// Momentum returns p = m·v.
func Momentum(mass, velocity float64) float64 { return mass * velocity }

// KineticEnergy returns ½·m·v².
func KineticEnergy(mass, velocity float64) float64 { return 0.5 * mass * velocity * velocity }

// PotentialEnergy returns m·g·h.
func PotentialEnergy(mass, height, g float64) float64 { return mass * g * height }
