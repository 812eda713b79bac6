package physics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/priyam/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// TestKinematics checks the constant-acceleration equations.
func TestKinematics(t *testing.T) {
	assert.Equal(t, 30.0, physics.FinalVelocity(10, 2, 10))
	assert.Equal(t, 200.0, physics.Displacement(10, 10, 2))
	assert.Equal(t, 900.0, physics.FinalVelocitySquared(10, 2, 200))
}

// TestTimeFromDisplacement covers the quadratic, linear and failure cases.
func TestTimeFromDisplacement(t *testing.T) {
	t1, t2, err := physics.TimeFromDisplacement(10, 2, 200)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, t1, eps)
	assert.InDelta(t, -20.0, t2, eps)

	t1, t2, err = physics.TimeFromDisplacement(5, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 4.0, t1)
	assert.Equal(t, 4.0, t2)

	_, _, err = physics.TimeFromDisplacement(1, -2, 10)
	assert.ErrorIs(t, err, physics.ErrNoRealRoots)

	_, _, err = physics.TimeFromDisplacement(0, 0, 5)
	assert.ErrorIs(t, err, physics.ErrDegenerate)
}

// TestDynamics checks Newtonian quantities.
func TestDynamics(t *testing.T) {
	assert.Equal(t, 20.0, physics.Force(10, 2))
	assert.InDelta(t, 98.1, physics.Weight(10, physics.StandardGravity), eps)
	assert.Equal(t, 15.0, physics.Momentum(3, 5))
	assert.Equal(t, 37.5, physics.KineticEnergy(3, 5))
	assert.InDelta(t, 196.2, physics.PotentialEnergy(2, 10, physics.StandardGravity), eps)
}

// TestProjectile uses a 20 m/s launch.
func TestProjectile(t *testing.T) {
	tof, err := physics.TimeOfFlight(20, math.Pi/6, physics.StandardGravity)
	require.NoError(t, err)
	assert.InDelta(t, 2.0387359836901116, tof, eps)

	r, err := physics.Range(20, math.Pi/4, physics.StandardGravity)
	require.NoError(t, err)
	assert.InDelta(t, 40.77471967380224, r, eps)

	h, err := physics.MaxHeight(20, math.Pi/6, physics.StandardGravity)
	require.NoError(t, err)
	assert.InDelta(t, 5.09683995922528, h, eps)

	_, err = physics.TimeOfFlight(20, 1, 0)
	assert.ErrorIs(t, err, physics.ErrZeroGravity)
	_, err = physics.Range(20, 1, 0)
	assert.ErrorIs(t, err, physics.ErrZeroGravity)
	_, err = physics.MaxHeight(20, 1, 0)
	assert.ErrorIs(t, err, physics.ErrZeroGravity)
}

// TestWaves checks wave speed and refraction.
func TestWaves(t *testing.T) {
	assert.Equal(t, 340.0, physics.WaveSpeed(170, 2))

	theta2, err := physics.SnellAngle(1, 1.5, math.Pi/6)
	require.NoError(t, err)
	assert.InDelta(t, 19.47122063449069*math.Pi/180, theta2, eps)

	_, err = physics.SnellAngle(1.5, 1, math.Pi/3)
	assert.ErrorIs(t, err, physics.ErrTotalInternalReflection)

	_, err = physics.SnellAngle(1, 0, 0.1)
	assert.ErrorIs(t, err, physics.ErrBadIndex)
}

// TestFields checks inverse-distance laws and the Lorentz force.
func TestFields(t *testing.T) {
	f, err := physics.CoulombForce(1e-6, -2e-6, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 179.75103584599996, f, 1e-6)

	e, err := physics.ElectricField(-1e-9, 1)
	require.NoError(t, err)
	assert.InDelta(t, 8.9875517923, e, eps)

	b, err := physics.MagneticFieldWire(10, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 4e-6, b, 1e-15)

	assert.InDelta(t, 6.0, physics.LorentzForce(-2, 3, 1, math.Pi/2), eps)

	_, err = physics.CoulombForce(1, 1, 0)
	assert.ErrorIs(t, err, physics.ErrZeroDistance)
	_, err = physics.ElectricField(1, 0)
	assert.ErrorIs(t, err, physics.ErrZeroDistance)
	_, err = physics.MagneticFieldWire(1, 0)
	assert.ErrorIs(t, err, physics.ErrZeroDistance)
}

// TestThermo checks work, internal energy and the first law.
func TestThermo(t *testing.T) {
	assert.Equal(t, 200.0, physics.WorkIsobaric(100, 2))

	w, err := physics.WorkIsothermal(1, 300, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1728.9516698296998, w, 1e-6)

	_, err = physics.WorkIsothermal(1, 300, 0, 2)
	assert.ErrorIs(t, err, physics.ErrNonPositiveVolume)

	assert.Equal(t, 300.0, physics.InternalEnergyChange(2, 15, 10))
	assert.Equal(t, 150.0, physics.HeatAdded(100, 50))
}
