package physics

// GravitationalConstant is G in N·m²/kg².
const GravitationalConstant = 6.674e-11

// Force returns m·a in newtons.
func Force(massKg, accelerationMS2 float64) float64 {
	return massKg * accelerationMS2
}

// Work returns F·d in joules.
func Work(forceN, distanceM float64) float64 {
	return forceN * distanceM
}

// Power returns W / t in watts.
func Power(workJ, timeS float64) (float64, error) {
	if err := positive("time", timeS); err != nil {
		return 0, err
	}

	return workJ / timeS, nil
}

// Pressure returns F / A in pascals.
func Pressure(forceN, areaM2 float64) (float64, error) {
	if err := positive("area", areaM2); err != nil {
		return 0, err
	}

	return forceN / areaM2, nil
}

// Torque returns F·r in N·m for a perpendicular lever arm.
func Torque(forceN, radiusM float64) float64 {
	return forceN * radiusM
}

// AngularVelocity returns θ / t in rad/s.
func AngularVelocity(angleRad, timeS float64) (float64, error) {
	if err := positive("time", timeS); err != nil {
		return 0, err
	}

	return angleRad / timeS, nil
}

// CentripetalForce returns m·v² / r in newtons.
func CentripetalForce(massKg, velocityMS, radiusM float64) (float64, error) {
	if err := positive("radius", radiusM); err != nil {
		return 0, err
	}

	return massKg * velocityMS * velocityMS / radiusM, nil
}

// GravitationalForce returns G·m₁·m₂ / r² in newtons.
func GravitationalForce(mass1Kg, mass2Kg, distanceM float64) (float64, error) {
	if err := positive("distance", distanceM); err != nil {
		return 0, err
	}

	return GravitationalConstant * mass1Kg * mass2Kg / (distanceM * distanceM), nil
}

// ElasticPotentialEnergy returns ½·k·x² in joules.
func ElasticPotentialEnergy(springConstantNM, displacementM float64) float64 {
	return 0.5 * springConstantNM * displacementM * displacementM
}

// Efficiency returns output / input as a percentage.
func Efficiency(outputJ, inputJ float64) (float64, error) {
	if err := positive("input energy", inputJ); err != nil {
		return 0, err
	}

	return outputJ / inputJ * 100, nil
}

// ElectricPower returns V·I in watts.
func ElectricPower(voltageV, currentA float64) float64 {
	return voltageV * currentA
}
