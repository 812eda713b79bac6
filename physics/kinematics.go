package physics

import (
	"fmt"
	"math"
)

// FinalVelocity returns v = u + a·t.
func FinalVelocity(u, a, t float64) float64 {
	return u + a*t
}

// Displacement returns s = u·t + ½·a·t².
func Displacement(u, t, a float64) float64 {
	return u*t + 0.5*a*t*t
}

// FinalVelocitySquared returns v² = u² + 2·a·s.
func FinalVelocitySquared(u, a, s float64) float64 {
	return u*u + 2*a*s
}

// TimeFromDisplacement solves s = u·t + ½·a·t² for t and returns both roots,
// the "+" root first. With a == 0 the equation is linear and both results
// equal s/u.
func TimeFromDisplacement(u, a, s float64) (float64, float64, error) {
	if a == 0 {
		if u == 0 {
			return 0, 0, fmt.Errorf("%w: a and u are both zero", ErrDegenerate)
		}
		t := s / u
		return t, t, nil
	}
	disc := u*u + 2*a*s
	if disc < 0 {
		return 0, 0, fmt.Errorf("%w: discriminant %g", ErrNoRealRoots, disc)
	}
	root := math.Sqrt(disc)

	return (-u + root) / a, (-u - root) / a, nil
}
