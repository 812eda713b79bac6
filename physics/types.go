package physics

import (
	"errors"
	"math"
)

// Physical constants in SI units.
const (
	// StandardGravity is the default g in m/s².
	StandardGravity = 9.81

	// GasConstant is R in J/(mol·K).
	GasConstant = 8.3145

	// CoulombConstant is k_e in N·m²/C².
	CoulombConstant = 8.9875517923e9

	// VacuumPermeability is μ0 in N/A².
	VacuumPermeability = 4 * math.Pi * 1e-7
)

var (
	// ErrNoRealRoots indicates that s = ut + ½at² has no real solution for t.
	ErrNoRealRoots = errors.New("physics: no real solution for time")

	// ErrDegenerate indicates an equation with no unique solution (a = u = 0).
	ErrDegenerate = errors.New("physics: degenerate equation")

	// ErrZeroGravity indicates g == 0 in a projectile formula.
	ErrZeroGravity = errors.New("physics: gravitational acceleration must be nonzero")

	// ErrBadIndex indicates a non-positive refractive index.
	ErrBadIndex = errors.New("physics: refractive index must be positive")

	// ErrTotalInternalReflection indicates that no refracted ray exists.
	ErrTotalInternalReflection = errors.New("physics: total internal reflection (no real refraction angle)")

	// ErrZeroDistance indicates r == 0 in an inverse-distance law.
	ErrZeroDistance = errors.New("physics: distance must be nonzero")

	// ErrNonPositiveVolume indicates a volume <= 0 in an isothermal process.
	ErrNonPositiveVolume = errors.New("physics: volumes must be positive")
)
