package calculator

import (
	"slices"
	"strings"

	"unitconv/pkg/domain"
	"unitconv/pkg/physics"
	"unitconv/pkg/serrors"
	"unitconv/pkg/units"
)

// Param describes one formula argument.
type Param struct {
	// Name is the argument key used by the CLI and the API.
	Name string
	// Kind is the quantity kind accepted as a unit string. Empty means the
	// argument is numeric-only and already in Unit.
	Kind units.Kind
	// Unit is the SI unit the argument is consumed in.
	Unit string
}

// Operation is a named formula that can be evaluated from loosely typed
// arguments.
type Operation struct {
	Name        string
	Description string
	Formula     string
	ResultUnit  string
	Params      []Param

	eval func(c *Calculator, args []Arg) (float64, error)
}

func distance(name string) Param { return Param{Name: name, Kind: units.Distance, Unit: "m"} }
func mass(name string) Param     { return Param{Name: name, Kind: units.Mass, Unit: "kg"} }
func velocity(name string) Param { return Param{Name: name, Kind: units.Velocity, Unit: "m/s"} }
func number(name, unit string) Param {
	return Param{Name: name, Unit: unit}
}

// operations is ordered for listing; names are unique.
var operations = []Operation{ //nolint: gochecknoglobals
	{
		Name: "speed", Description: "Speed from distance and time", Formula: "v = d / t", ResultUnit: "m/s",
		Params: []Param{distance("distance"), number("time", "s")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.Speed(a[0], a[1].value) },
	},
	{
		Name: "acceleration", Description: "Acceleration from a velocity change over time", Formula: "a = Δv / t", ResultUnit: "m/s²",
		Params: []Param{velocity("velocity_change"), number("time", "s")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.Acceleration(a[0], a[1].value) },
	},
	{
		Name: "density", Description: "Density from mass and volume", Formula: "ρ = m / V", ResultUnit: "kg/m³",
		Params: []Param{mass("mass"), number("volume", "m³")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.Density(a[0], a[1].value) },
	},
	{
		Name: "momentum", Description: "Linear momentum", Formula: "p = m × v", ResultUnit: "kg·m/s",
		Params: []Param{mass("mass"), velocity("velocity")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.Momentum(a[0], a[1]) },
	},
	{
		Name: "kinetic_energy", Description: "Kinetic energy", Formula: "KE = ½ × m × v²", ResultUnit: "J",
		Params: []Param{mass("mass"), velocity("velocity")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.KineticEnergy(a[0], a[1]) },
	},
	{
		Name: "potential_energy", Description: "Gravitational potential energy near the surface", Formula: "PE = m × g × h", ResultUnit: "J",
		Params: []Param{mass("mass"), distance("height")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.PotentialEnergy(a[0], a[1]) },
	},
	{
		Name: "impulse", Description: "Impulse of a constant force", Formula: "J = F × Δt", ResultUnit: "N·s",
		Params: []Param{number("force", "N"), number("time", "s")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.Impulse(a[0].value, a[1].value) },
	},
	{
		Name: "force", Description: "Newton's second law", Formula: "F = m × a", ResultUnit: "N",
		Params: []Param{mass("mass"), number("acceleration", "m/s²")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.Force(a[0], a[1].value) },
	},
	{
		Name: "work", Description: "Work done by a force along a distance", Formula: "W = F × d", ResultUnit: "J",
		Params: []Param{number("force", "N"), distance("distance")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.Work(a[0].value, a[1]) },
	},
	{
		Name: "power", Description: "Power from work and time", Formula: "P = W / t", ResultUnit: "W",
		Params: []Param{number("work", "J"), number("time", "s")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.Power(a[0].value, a[1].value) },
	},
	{
		Name: "pressure", Description: "Pressure from force and area", Formula: "P = F / A", ResultUnit: "Pa",
		Params: []Param{number("force", "N"), number("area", "m²")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.Pressure(a[0].value, a[1].value) },
	},
	{
		Name: "torque", Description: "Torque from a perpendicular lever arm", Formula: "τ = F × r", ResultUnit: "N·m",
		Params: []Param{number("force", "N"), distance("lever_arm")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.Torque(a[0].value, a[1]) },
	},
	{
		Name: "centripetal_force", Description: "Centripetal force in circular motion", Formula: "F = m × v² / r", ResultUnit: "N",
		Params: []Param{mass("mass"), velocity("velocity"), distance("radius")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.CentripetalForce(a[0], a[1], a[2]) },
	},
	{
		Name: "gravitational_force", Description: "Newtonian gravitation between two masses", Formula: "F = G × m₁ × m₂ / r²", ResultUnit: "N",
		Params: []Param{mass("mass1"), mass("mass2"), distance("distance")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.GravitationalForce(a[0], a[1], a[2]) },
	},
	{
		Name: "elastic_potential_energy", Description: "Energy stored in a spring", Formula: "PE = ½ × k × x²", ResultUnit: "J",
		Params: []Param{number("spring_constant", "N/m"), distance("displacement")},
		eval: func(c *Calculator, a []Arg) (float64, error) {
			return c.ElasticPotentialEnergy(a[0].value, a[1])
		},
	},
	{
		Name: "falling_body", Description: "Distance fallen from rest", Formula: "d = ½ × g × t²", ResultUnit: "m",
		Params: []Param{number("time", "s")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.FallingBody(a[0].value) },
	},
	{
		Name: "projectile_range", Description: "Range of a projectile over flat ground", Formula: "R = u² × sin(2θ) / g", ResultUnit: "m",
		Params: []Param{velocity("velocity"), number("angle", "°")},
		eval:   func(c *Calculator, a []Arg) (float64, error) { return c.ProjectileRange(a[0], a[1].value) },
	},
	{
		Name: "frequency", Description: "Frequency from period", Formula: "f = 1 / T", ResultUnit: "Hz",
		Params: []Param{number("period", "s")},
		eval:   func(_ *Calculator, a []Arg) (float64, error) { return physics.Frequency(a[0].value) },
	},
	{
		Name: "period", Description: "Period from frequency", Formula: "T = 1 / f", ResultUnit: "s",
		Params: []Param{number("frequency", "Hz")},
		eval:   func(_ *Calculator, a []Arg) (float64, error) { return physics.Period(a[0].value) },
	},
	{
		Name: "angular_velocity", Description: "Angular velocity from angle and time", Formula: "ω = θ / t", ResultUnit: "rad/s",
		Params: []Param{number("angle", "rad"), number("time", "s")},
		eval:   func(_ *Calculator, a []Arg) (float64, error) { return physics.AngularVelocity(a[0].value, a[1].value) },
	},
	{
		Name: "efficiency", Description: "Efficiency as a percentage", Formula: "η = E_out / E_in × 100", ResultUnit: "%",
		Params: []Param{number("output_energy", "J"), number("input_energy", "J")},
		eval:   func(_ *Calculator, a []Arg) (float64, error) { return physics.Efficiency(a[0].value, a[1].value) },
	},
	{
		Name: "electric_power", Description: "Electrical power", Formula: "P = V × I", ResultUnit: "W",
		Params: []Param{number("voltage", "V"), number("current", "A")},
		eval:   func(_ *Calculator, a []Arg) (float64, error) { return physics.ElectricPower(a[0].value, a[1].value), nil },
	},
}

// Operations returns every registered operation in listing order.
func Operations() []Operation {
	out := make([]Operation, len(operations))
	for i, op := range operations {
		out[i] = op
		out[i].Params = slices.Clone(op.Params)
	}

	return out
}

// LookupOperation finds an operation by name, ignoring case and treating "-"
// as "_".
func LookupOperation(name string) (Operation, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, op := range operations {
		if op.Name == key {
			op.Params = slices.Clone(op.Params)

			return op, true
		}
	}

	return Operation{}, false
}

// Evaluate resolves args by parameter name and runs the operation. Every
// parameter is required and unknown names are rejected. Text arguments are
// only accepted for parameters with a Kind.
func (o Operation) Evaluate(c *Calculator, args map[string]Arg) (domain.Calculation, error) {
	for name := range args {
		if !slices.ContainsFunc(o.Params, func(p Param) bool { return p.Name == name }) {
			return domain.Calculation{}, serrors.With(serrors.ErrBadRequest,
				"%s does not take a %q argument", o.Name, name)
		}
	}

	resolved := make([]Arg, len(o.Params))
	inputs := make(map[string]float64, len(o.Params))
	for i, p := range o.Params {
		arg, ok := args[p.Name]
		if !ok {
			return domain.Calculation{}, serrors.With(serrors.ErrBadRequest,
				"%s requires a %q argument", o.Name, p.Name)
		}
		if p.Kind == "" && arg.IsText() {
			return domain.Calculation{}, serrors.With(serrors.ErrBadRequest,
				"%s argument %q takes a plain number in %s, got %q", o.Name, p.Name, p.Unit, arg.String())
		}

		si, err := arg.Resolve(c.parser, p.Kind)
		if err != nil {
			return domain.Calculation{}, err
		}
		resolved[i] = Numeric(si)
		inputs[p.Name] = si
	}

	result, err := o.eval(c, resolved)
	if err != nil {
		return domain.Calculation{}, err
	}

	return domain.Calculation{
		Operation: o.Name,
		Inputs:    inputs,
		Result:    result,
		Unit:      o.ResultUnit,
	}, nil
}
