// Package calculator bridges string-or-number arguments to the formula layer.
//
// Calculator methods accept unit-capable arguments as Arg values and
// numeric-only arguments (seconds, degrees, newtons, ...) as plain float64. Every
// Arg is resolved to SI before the formula in package physics runs. Parser and
// domain errors are returned unchanged; results are always in SI units.
package calculator

import (
	"unitconv/pkg/physics"
	"unitconv/pkg/units"
)

// Calculator holds the parser used to resolve text arguments. It has no
// mutable state and is safe for concurrent use.
type Calculator struct {
	parser *units.Parser
}

// New returns a calculator resolving text arguments with p. A nil parser
// selects the built-in unit table.
func New(p *units.Parser) *Calculator {
	if p == nil {
		p = units.DefaultParser()
	}

	return &Calculator{parser: p}
}

// Parser returns the parser used to resolve text arguments.
func (c *Calculator) Parser() *units.Parser { return c.parser }

// Speed returns distance / time in m/s.
func (c *Calculator) Speed(distance Arg, timeS float64) (float64, error) {
	d, err := distance.Resolve(c.parser, units.Distance)
	if err != nil {
		return 0, err
	}

	return physics.Speed(d, timeS) //nolint: wrapcheck
}

// Acceleration returns Δv / time in m/s², treating velocityChange as the
// difference between final and initial velocity.
func (c *Calculator) Acceleration(velocityChange Arg, timeS float64) (float64, error) {
	v, err := velocityChange.Resolve(c.parser, units.Velocity)
	if err != nil {
		return 0, err
	}

	return physics.Acceleration(v, 0, timeS) //nolint: wrapcheck
}

// Density returns mass / volume in kg/m³.
func (c *Calculator) Density(mass Arg, volumeM3 float64) (float64, error) {
	m, err := mass.Resolve(c.parser, units.Mass)
	if err != nil {
		return 0, err
	}

	return physics.Density(m, volumeM3) //nolint: wrapcheck
}

// Momentum returns m·v in kg·m/s.
func (c *Calculator) Momentum(mass, velocity Arg) (float64, error) {
	m, v, err := c.massVelocity(mass, velocity)
	if err != nil {
		return 0, err
	}

	return physics.Momentum(m, v), nil
}

// KineticEnergy returns ½·m·v² in joules.
func (c *Calculator) KineticEnergy(mass, velocity Arg) (float64, error) {
	m, v, err := c.massVelocity(mass, velocity)
	if err != nil {
		return 0, err
	}

	return physics.KineticEnergy(m, v), nil
}

// PotentialEnergy returns m·g·h in joules.
func (c *Calculator) PotentialEnergy(mass, height Arg) (float64, error) {
	m, err := mass.Resolve(c.parser, units.Mass)
	if err != nil {
		return 0, err
	}
	h, err := height.Resolve(c.parser, units.Distance)
	if err != nil {
		return 0, err
	}

	return physics.PotentialEnergy(m, h), nil
}

// Impulse returns F·Δt in N·s.
func (c *Calculator) Impulse(forceN, timeS float64) (float64, error) {
	return physics.Impulse(forceN, timeS), nil
}

// Force returns m·a in newtons.
func (c *Calculator) Force(mass Arg, accelerationMS2 float64) (float64, error) {
	m, err := mass.Resolve(c.parser, units.Mass)
	if err != nil {
		return 0, err
	}

	return physics.Force(m, accelerationMS2), nil
}

// Work returns F·d in joules.
func (c *Calculator) Work(forceN float64, distance Arg) (float64, error) {
	d, err := distance.Resolve(c.parser, units.Distance)
	if err != nil {
		return 0, err
	}

	return physics.Work(forceN, d), nil
}

// Power returns W / t in watts.
func (c *Calculator) Power(workJ, timeS float64) (float64, error) {
	return physics.Power(workJ, timeS) //nolint: wrapcheck
}

// Pressure returns F / A in pascals. Area is taken in m².
func (c *Calculator) Pressure(forceN, areaM2 float64) (float64, error) {
	return physics.Pressure(forceN, areaM2) //nolint: wrapcheck
}

// Torque returns F·r in N·m.
func (c *Calculator) Torque(forceN float64, leverArm Arg) (float64, error) {
	r, err := leverArm.Resolve(c.parser, units.Distance)
	if err != nil {
		return 0, err
	}

	return physics.Torque(forceN, r), nil
}

// CentripetalForce returns m·v² / r in newtons.
func (c *Calculator) CentripetalForce(mass, velocity, radius Arg) (float64, error) {
	m, v, err := c.massVelocity(mass, velocity)
	if err != nil {
		return 0, err
	}
	r, err := radius.Resolve(c.parser, units.Distance)
	if err != nil {
		return 0, err
	}

	return physics.CentripetalForce(m, v, r) //nolint: wrapcheck
}

// GravitationalForce returns G·m₁·m₂ / r² in newtons.
func (c *Calculator) GravitationalForce(mass1, mass2, distance Arg) (float64, error) {
	m1, err := mass1.Resolve(c.parser, units.Mass)
	if err != nil {
		return 0, err
	}
	m2, err := mass2.Resolve(c.parser, units.Mass)
	if err != nil {
		return 0, err
	}
	d, err := distance.Resolve(c.parser, units.Distance)
	if err != nil {
		return 0, err
	}

	return physics.GravitationalForce(m1, m2, d) //nolint: wrapcheck
}

// ElasticPotentialEnergy returns ½·k·x² in joules.
func (c *Calculator) ElasticPotentialEnergy(springConstantNM float64, displacement Arg) (float64, error) {
	x, err := displacement.Resolve(c.parser, units.Distance)
	if err != nil {
		return 0, err
	}

	return physics.ElasticPotentialEnergy(springConstantNM, x), nil
}

// FallingBody returns the distance in meters fallen from rest after timeS.
func (c *Calculator) FallingBody(timeS float64) (float64, error) {
	return physics.FallingBody(timeS) //nolint: wrapcheck
}

// ProjectileRange returns the range in meters for a launch velocity and an
// angle in degrees.
func (c *Calculator) ProjectileRange(velocity Arg, angleDeg float64) (float64, error) {
	v, err := velocity.Resolve(c.parser, units.Velocity)
	if err != nil {
		return 0, err
	}

	return physics.ProjectileRange(v, angleDeg) //nolint: wrapcheck
}

func (c *Calculator) massVelocity(mass, velocity Arg) (float64, float64, error) {
	m, err := mass.Resolve(c.parser, units.Mass)
	if err != nil {
		return 0, 0, err
	}
	v, err := velocity.Resolve(c.parser, units.Velocity)
	if err != nil {
		return 0, 0, err
	}

	return m, v, nil
}
