package units

import (
	"strings"

	"unitconv/pkg/serrors"
)

// TemperatureScale is a temperature unit. Temperatures are affine rather than
// multiplicative, so they are not part of Table.
type TemperatureScale byte

const (
	Celsius    TemperatureScale = 'C'
	Fahrenheit TemperatureScale = 'F'
	Kelvin     TemperatureScale = 'K'
)

// ParseTemperatureScale accepts "c", "celsius", "°C" and the Fahrenheit and
// Kelvin equivalents.
func ParseTemperatureScale(name string) (TemperatureScale, error) {
	switch strings.TrimPrefix(NormalizeToken(name), "°") {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "k", "kelvin":
		return Kelvin, nil
	}

	return 0, serrors.With(serrors.ErrBadRequest, "unknown temperature scale %q", name)
}

// ConvertTemperature converts v between scales.
func ConvertTemperature(v float64, from, to TemperatureScale) float64 {
	var celsius float64
	switch from {
	case Fahrenheit:
		celsius = (v - 32) * 5 / 9
	case Kelvin:
		celsius = v - 273.15
	default:
		celsius = v
	}

	switch to {
	case Fahrenheit:
		return celsius*9/5 + 32
	case Kelvin:
		return celsius + 273.15
	default:
		return celsius
	}
}

func (s TemperatureScale) String() string {
	switch s {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "?"
	}
}
