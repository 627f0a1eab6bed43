package units

import (
	"strings"

	"unitconv/pkg/serrors"
)

// Kind is a category of physical measurement with its own alias table and SI
// base unit.
type Kind string

const (
	// Distance is measured in meters.
	Distance Kind = "distance"
	// Mass is measured in kilograms.
	Mass Kind = "mass"
	// Velocity is measured in meters per second.
	Velocity Kind = "velocity"
	// Time is measured in seconds.
	Time Kind = "time"
)

// SIUnit returns the symbol of the SI base unit for the kind.
func (k Kind) SIUnit() string {
	switch k {
	case Distance:
		return "m"
	case Mass:
		return "kg"
	case Velocity:
		return "m/s"
	case Time:
		return "s"
	default:
		return ""
	}
}

// kindNames maps accepted spellings to kinds. "length" and "speed" are kept as
// synonyms for callers used to the physics vocabulary.
var kindNames = map[string]Kind{ //nolint: gochecknoglobals
	"distance": Distance,
	"length":   Distance,
	"mass":     Mass,
	"velocity": Velocity,
	"speed":    Velocity,
	"time":     Time,
}

// ParseKind resolves a kind name, ignoring case and surrounding whitespace.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}

	return "", serrors.With(serrors.ErrBadRequest, "unknown quantity kind %q", name)
}
