package domain

import (
	"slices"

	"github.com/go-faster/jx"
)

// Calculation is the outcome of evaluating one formula.
type Calculation struct {
	// Operation is the registry name of the formula, e.g. "momentum".
	Operation string
	// Inputs holds the SI value each argument resolved to, keyed by parameter name.
	Inputs map[string]float64
	// Result is the formula output in Unit.
	Result float64
	// Unit is the SI unit of Result.
	Unit string
}

// Encode writes the calculation as a JSON object. Inputs are written in
// parameter-name order so the output is stable.
func (c Calculation) Encode(e *jx.Encoder) {
	names := make([]string, 0, len(c.Inputs))
	for name := range c.Inputs {
		names = append(names, name)
	}
	slices.Sort(names)

	e.ObjStart()
	e.FieldStart("operation")
	e.Str(c.Operation)
	e.FieldStart("inputs")
	e.ObjStart()
	for _, name := range names {
		e.FieldStart(name)
		e.Float64(c.Inputs[name])
	}
	e.ObjEnd()
	e.FieldStart("result")
	e.Float64(c.Result)
	e.FieldStart("unit")
	e.Str(c.Unit)
	e.ObjEnd()
}
