// Package physics provides closed-form helpers for introductory mechanics,
// waves, electromagnetism and thermodynamics.
//
// Every quantity is a float64 in SI units and every angle is in radians.
// Functions that are defined everywhere return a bare float64; those with
// singular inputs (zero distance, zero gravity, non-positive volume, no real
// root) return an error wrapping one of the package sentinels.
//
// Groups:
//
//   - Kinematics:  FinalVelocity, Displacement, FinalVelocitySquared,
//     TimeFromDisplacement.
//   - Dynamics:    Force, Weight, Momentum, KineticEnergy, PotentialEnergy.
//   - Projectile:  TimeOfFlight, Range, MaxHeight.
//   - Waves:       WaveSpeed, SnellAngle.
//   - Fields:      CoulombForce, ElectricField, MagneticFieldWire,
//     LorentzForce.
//   - Thermo:      WorkIsobaric, WorkIsothermal, InternalEnergyChange,
//     HeatAdded.
//
// Sign conventions follow the first law as ΔU = Q - W, where W is the work
// done by the system.
package physics
