package physics

import "math"

// TimeOfFlight returns 2·u·sin(θ)/g for a launch from ground level.
func TimeOfFlight(u, theta, g float64) (float64, error) {
	if g == 0 {
		return 0, ErrZeroGravity
	}
	return 2 * u * math.Sin(theta) / g, nil
}

// Range returns u²·sin(2θ)/g, the horizontal distance on level ground.
func Range(u, theta, g float64) (float64, error) {
	if g == 0 {
		return 0, ErrZeroGravity
	}
	return u * u * math.Sin(2*theta) / g, nil
}

// MaxHeight returns u²·sin²(θ)/(2g).
func MaxHeight(u, theta, g float64) (float64, error) {
	if g == 0 {
		return 0, ErrZeroGravity
	}
	s := math.Sin(theta)
	return u * u * s * s / (2 * g), nil
}
