package physics

import "math"

// FallingBody returns the distance in meters fallen from rest after timeS
// seconds: ½·g·t².
func FallingBody(timeS float64) (float64, error) {
	if err := nonNegative("time", timeS); err != nil {
		return 0, err
	}

	return 0.5 * StandardGravity * timeS * timeS, nil
}

// ProjectileRange returns the horizontal range in meters of a projectile
// launched over flat ground: u²·sin(2θ) / g, with θ in degrees.
func ProjectileRange(initialVelocityMS, angleDeg float64) (float64, error) {
	if err := nonNegative("initial velocity", initialVelocityMS); err != nil {
		return 0, err
	}

	rad := angleDeg * math.Pi / 180

	return initialVelocityMS * initialVelocityMS * math.Sin(2*rad) / StandardGravity, nil
}
