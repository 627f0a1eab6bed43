package physics

// StandardGravity is the gravitational acceleration used by the formulas, in m/s².
const StandardGravity = 9.81

// Speed returns distance / time in m/s.
func Speed(distanceM, timeS float64) (float64, error) {
	if err := positive("time", timeS); err != nil {
		return 0, err
	}

	return distanceM / timeS, nil
}

// Acceleration returns (vFinal - vInitial) / time in m/s².
func Acceleration(vFinal, vInitial, timeS float64) (float64, error) {
	if err := positive("time", timeS); err != nil {
		return 0, err
	}

	return (vFinal - vInitial) / timeS, nil
}

// Density returns mass / volume in kg/m³.
func Density(massKg, volumeM3 float64) (float64, error) {
	if err := positive("volume", volumeM3); err != nil {
		return 0, err
	}

	return massKg / volumeM3, nil
}

// Momentum returns m·v in kg·m/s.
func Momentum(massKg, velocityMS float64) float64 {
	return massKg * velocityMS
}

// KineticEnergy returns ½·m·v² in joules.
func KineticEnergy(massKg, velocityMS float64) float64 {
	return 0.5 * massKg * velocityMS * velocityMS
}

// PotentialEnergy returns m·g·h in joules using StandardGravity.
func PotentialEnergy(massKg, heightM float64) float64 {
	return massKg * StandardGravity * heightM
}

// Impulse returns F·Δt in N·s.
func Impulse(forceN, timeS float64) float64 {
	return forceN * timeS
}

// Frequency returns 1 / period in Hz.
func Frequency(periodS float64) (float64, error) {
	if err := positive("period", periodS); err != nil {
		return 0, err
	}

	return 1 / periodS, nil
}

// Period returns 1 / frequency in seconds.
func Period(frequencyHz float64) (float64, error) {
	if err := positive("frequency", frequencyHz); err != nil {
		return 0, err
	}

	return 1 / frequencyHz, nil
}
