package physics

import (
	"fmt"
	"math"
)

// WaveSpeed returns v = f·λ.
func WaveSpeed(frequency, wavelength float64) float64 {
	return frequency * wavelength
}

// SnellAngle returns the refraction angle θ2 from n1·sin(θ1) = n2·sin(θ2).
func SnellAngle(n1, n2, theta1 float64) (float64, error) {
	if n1 <= 0 || n2 <= 0 {
		return 0, fmt.Errorf("%w: n1=%g n2=%g", ErrBadIndex, n1, n2)
	}
	sinTheta2 := n1 * math.Sin(theta1) / n2
	if math.Abs(sinTheta2) > 1 {
		return 0, ErrTotalInternalReflection
	}

	return math.Asin(sinTheta2), nil
}
