// Package physics implements closed-form formulas over SI scalars.
//
// Every function takes SI inputs and returns an SI result. Physically invalid
// inputs (non-positive time, radius, area, ...) are rejected with a
// *DomainError; everything else is plain arithmetic with no rounding.
package physics
