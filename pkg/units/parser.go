package units

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Quantity is the outcome of parsing one quantity string.
type Quantity struct {
	// Magnitude is the number as written by the user.
	Magnitude float64
	// SI is Magnitude converted to the kind's SI base unit.
	SI float64
	// Kind is the quantity kind the string was parsed as.
	Kind Kind
	// Unit is the resolved unit definition.
	Unit UnitDefinition
}

// Parser turns quantity strings into SI scalars using a Table.
type Parser struct {
	table *Table
}

// NewParser returns a parser backed by the given table.
func NewParser(table *Table) *Parser {
	return &Parser{table: table}
}

// DefaultParser returns a parser backed by the built-in table.
func DefaultParser() *Parser {
	return &Parser{table: Default()}
}

// Table returns the table the parser resolves units with.
func (p *Parser) Table() *Table { return p.table }

// Parse converts input, e.g. "10 feet", into the SI value of the kind.
func (p *Parser) Parse(kind Kind, input string) (float64, error) {
	q, err := p.ParseQuantity(kind, input)
	if err != nil {
		return 0, err
	}

	return q.SI, nil
}

// ParseQuantity is like Parse but also returns the magnitude and the resolved
// unit.
func (p *Parser) ParseQuantity(kind Kind, input string) (Quantity, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Quantity{}, &ParseError{Input: input, Reason: ReasonEmpty}
	}

	number, unit := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		number, unit = trimmed[:i], strings.TrimSpace(trimmed[i:])
	}

	magnitude, err := parseMagnitude(input, number)
	if err != nil {
		return Quantity{}, err
	}

	if unit == "" {
		return Quantity{}, &ParseError{Input: input, Reason: ReasonMissing}
	}

	def, err := p.table.Lookup(kind, unit)
	if err != nil {
		return Quantity{}, err
	}

	si := def.ToSI(magnitude)
	if math.IsInf(si, 0) {
		return Quantity{}, &ParseError{Input: input, Value: number, Reason: ReasonNonFinite}
	}

	return Quantity{
		Magnitude: magnitude,
		SI:        si,
		Kind:      kind,
		Unit:      def,
	}, nil
}

// ParseNumber parses a bare magnitude with the same rules as the number part
// of a quantity string: a plain, finite decimal literal.
func ParseNumber(s string) (float64, error) {
	return parseMagnitude(s, strings.TrimSpace(s))
}

// parseMagnitude accepts plain decimal literals only; strconv alone would also
// let through hex floats, "inf", "nan" and digit separators.
func parseMagnitude(input, number string) (float64, error) {
	if !isDecimalLiteral(number) {
		return 0, &ParseError{Input: input, Value: number, Reason: ReasonInvalid}
	}

	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return 0, &ParseError{Input: input, Value: number, Reason: ReasonNonFinite, err: err}
		}

		return 0, &ParseError{Input: input, Value: number, Reason: ReasonInvalid, err: err}
	}

	return v, nil
}

// isDecimalLiteral reports whether s matches [+-]?(digits[.digits?]|.digits)([eE][+-]?digits)?.
func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}

	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Parse converts input into the SI value of the kind using the built-in table.
func Parse(kind Kind, input string) (float64, error) {
	return DefaultParser().Parse(kind, input)
}

// ParseQuantity parses input with the built-in table.
func ParseQuantity(kind Kind, input string) (Quantity, error) {
	return DefaultParser().ParseQuantity(kind, input)
}
