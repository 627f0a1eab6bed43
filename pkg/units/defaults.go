package units

import "sync"

// Definitions returns the built-in unit definitions. Factors use the exact
// international definitions of the customary units.
func Definitions() []UnitDefinition {
	return []UnitDefinition{
		// distance, SI base: meter
		{Kind: Distance, Name: "meter", Symbol: "m", Aliases: []string{"meters", "metre", "metres"}, FactorToSI: 1},
		{Kind: Distance, Name: "millimeter", Symbol: "mm", Aliases: []string{"millimeters", "millimetre", "millimetres"}, FactorToSI: 0.001},
		{Kind: Distance, Name: "centimeter", Symbol: "cm", Aliases: []string{"centimeters", "centimetre", "centimetres"}, FactorToSI: 0.01},
		{Kind: Distance, Name: "kilometer", Symbol: "km", Aliases: []string{"kilometers", "kilometre", "kilometres"}, FactorToSI: 1000},
		{Kind: Distance, Name: "inch", Symbol: "in", Aliases: []string{"inches"}, FactorToSI: 0.0254},
		{Kind: Distance, Name: "foot", Symbol: "ft", Aliases: []string{"feet"}, FactorToSI: 0.3048},
		{Kind: Distance, Name: "yard", Symbol: "yd", Aliases: []string{"yards", "yds"}, FactorToSI: 0.9144},
		{Kind: Distance, Name: "mile", Symbol: "mi", Aliases: []string{"miles"}, FactorToSI: 1609.344},
		{Kind: Distance, Name: "nautical mile", Symbol: "nmi", Aliases: []string{"nautical miles"}, FactorToSI: 1852},

		// mass, SI base: kilogram
		{Kind: Mass, Name: "kilogram", Symbol: "kg", Aliases: []string{"kilograms", "kgs"}, FactorToSI: 1},
		{Kind: Mass, Name: "gram", Symbol: "g", Aliases: []string{"grams"}, FactorToSI: 0.001},
		{Kind: Mass, Name: "milligram", Symbol: "mg", Aliases: []string{"milligrams"}, FactorToSI: 1e-6},
		{Kind: Mass, Name: "tonne", Symbol: "t", Aliases: []string{"tonnes", "metric ton", "metric tons"}, FactorToSI: 1000},
		{Kind: Mass, Name: "pound", Symbol: "lb", Aliases: []string{"pounds", "lbs"}, FactorToSI: 0.45359237},
		{Kind: Mass, Name: "ounce", Symbol: "oz", Aliases: []string{"ounces"}, FactorToSI: 0.028349523125},

		// velocity, SI base: meter per second
		{Kind: Velocity, Name: "meter per second", Symbol: "m/s", Aliases: []string{"mps", "meters per second"}, FactorToSI: 1},
		{Kind: Velocity, Name: "kilometer per hour", Symbol: "km/h", Aliases: []string{"kmh", "kph", "km/hr", "kilometers per hour"}, FactorToSI: 1 / 3.6},
		{Kind: Velocity, Name: "mile per hour", Symbol: "mph", Aliases: []string{"mi/h", "miles per hour"}, FactorToSI: 0.44704},
		{Kind: Velocity, Name: "foot per second", Symbol: "ft/s", Aliases: []string{"fps", "feet per second"}, FactorToSI: 0.3048},
		{Kind: Velocity, Name: "knot", Symbol: "kn", Aliases: []string{"knots", "kt"}, FactorToSI: 1852.0 / 3600},

		// time, SI base: second
		{Kind: Time, Name: "second", Symbol: "s", Aliases: []string{"seconds", "sec", "secs"}, FactorToSI: 1},
		{Kind: Time, Name: "millisecond", Symbol: "ms", Aliases: []string{"milliseconds"}, FactorToSI: 0.001},
		{Kind: Time, Name: "minute", Symbol: "min", Aliases: []string{"minutes", "mins"}, FactorToSI: 60},
		{Kind: Time, Name: "hour", Symbol: "h", Aliases: []string{"hours", "hr", "hrs"}, FactorToSI: 3600},
	}
}

// defaultTable is built on first use and never mutated afterwards.
var defaultTable = sync.OnceValue(func() *Table { //nolint: gochecknoglobals
	t, err := NewTable(Definitions()...)
	if err != nil {
		panic("units: invalid built-in table: " + err.Error())
	}

	return t
})

// Default returns the process-wide built-in table.
func Default() *Table { return defaultTable() }
