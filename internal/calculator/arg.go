package calculator

import (
	"strconv"

	"unitconv/pkg/units"
)

// Arg is a formula argument given either as a bare SI number or as a
// unit-annotated string such as "10 lb". The zero value is Numeric(0).
type Arg struct {
	value  float64
	text   string
	isText bool
}

// Numeric returns an argument that is already expressed in SI units.
func Numeric(v float64) Arg { return Arg{value: v} }

// Text returns an argument that must be parsed with a unit, e.g. "50 km/h".
func Text(s string) Arg { return Arg{text: s, isText: true} }

// IsText reports whether the argument carries a unit string.
func (a Arg) IsText() bool { return a.isText }

// Resolve returns the SI value of the argument. Numeric arguments are returned
// as-is; text arguments are parsed as the given kind.
func (a Arg) Resolve(p *units.Parser, kind units.Kind) (float64, error) {
	if !a.isText {
		return a.value, nil
	}

	return p.Parse(kind, a.text) //nolint: wrapcheck
}

func (a Arg) String() string {
	if a.isText {
		return a.text
	}

	return strconv.FormatFloat(a.value, 'g', -1, 64)
}
