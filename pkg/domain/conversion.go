package domain

import "github.com/go-faster/jx"

// Conversion is the outcome of normalizing one quantity string.
type Conversion struct {
	// Kind is the quantity kind the input was parsed as.
	Kind string
	// Input is the raw quantity string.
	Input string
	// Magnitude is the number as written.
	Magnitude float64
	// Unit is the canonical name of the recognized unit.
	Unit string
	// SI is the value in the kind's SI base unit.
	SI float64
	// SIUnit is the symbol of the SI base unit.
	SIUnit string
	// Target is the unit requested for the result; empty when only SI was requested.
	Target string
	// Value is SI expressed in Target; equal to SI when Target is empty.
	Value float64
}

// Encode writes the conversion as a JSON object.
func (c Conversion) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("kind")
	e.Str(c.Kind)
	e.FieldStart("input")
	e.Str(c.Input)
	e.FieldStart("magnitude")
	e.Float64(c.Magnitude)
	e.FieldStart("unit")
	e.Str(c.Unit)
	e.FieldStart("si")
	e.Float64(c.SI)
	e.FieldStart("siUnit")
	e.Str(c.SIUnit)
	if c.Target != "" {
		e.FieldStart("target")
		e.Str(c.Target)
	}
	e.FieldStart("value")
	e.Float64(c.Value)
	e.ObjEnd()
}
