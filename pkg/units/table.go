package units

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// UnitDefinition describes one recognized unit of a kind.
type UnitDefinition struct {
	// Kind is the quantity the unit measures.
	Kind Kind
	// Name is the canonical, human-readable name (e.g. "foot").
	Name string
	// Symbol is the preferred short token (e.g. "ft").
	Symbol string
	// Aliases lists every accepted spelling, Name and Symbol included.
	Aliases []string
	// FactorToSI converts one of this unit into the kind's SI base unit.
	FactorToSI float64
}

// ToSI converts a magnitude expressed in this unit into the SI base unit.
func (u UnitDefinition) ToSI(magnitude float64) float64 { return magnitude * u.FactorToSI }

// FromSI expresses an SI value in this unit.
func (u UnitDefinition) FromSI(si float64) float64 { return si / u.FactorToSI }

// Table is an immutable registry of units per kind. It is safe for concurrent
// use because no method mutates it after NewTable returns.
type Table struct {
	byAlias map[Kind]map[string]*UnitDefinition
	units   map[Kind][]*UnitDefinition
	kinds   []Kind
}

// NormalizeToken applies the lookup normalization rule: case-fold and remove
// every whitespace rune.
func NormalizeToken(token string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, strings.ToLower(token))
}

// NewTable builds a table from the given definitions. It fails when a factor is
// not a positive finite number, when a definition has no aliases, or when two
// units of the same kind share a normalized alias.
func NewTable(defs ...UnitDefinition) (*Table, error) {
	t := &Table{
		byAlias: make(map[Kind]map[string]*UnitDefinition),
		units:   make(map[Kind][]*UnitDefinition),
	}

	for i := range defs {
		def := defs[i]
		if def.Kind == "" {
			return nil, fmt.Errorf("unit %q has no kind", def.Name)
		}
		if def.FactorToSI <= 0 || math.IsInf(def.FactorToSI, 0) || math.IsNaN(def.FactorToSI) {
			return nil, fmt.Errorf("unit %q has invalid factor %v", def.Name, def.FactorToSI)
		}

		def.Aliases = slices.Clone(def.Aliases)
		for _, extra := range []string{def.Name, def.Symbol} {
			if extra != "" && !slices.Contains(def.Aliases, extra) {
				def.Aliases = append(def.Aliases, extra)
			}
		}
		if len(def.Aliases) == 0 {
			return nil, fmt.Errorf("unit %q has no aliases", def.Name)
		}

		aliases, ok := t.byAlias[def.Kind]
		if !ok {
			aliases = make(map[string]*UnitDefinition)
			t.byAlias[def.Kind] = aliases
			t.kinds = append(t.kinds, def.Kind)
		}

		stored := &def
		for _, alias := range def.Aliases {
			key := NormalizeToken(alias)
			if key == "" {
				return nil, fmt.Errorf("unit %q has a blank alias", def.Name)
			}
			if prev, dup := aliases[key]; dup && prev != stored {
				return nil, fmt.Errorf("%s alias %q is used by both %q and %q", def.Kind, key, prev.Name, def.Name)
			}
			aliases[key] = stored
		}
		t.units[def.Kind] = append(t.units[def.Kind], stored)
	}

	return t, nil
}

// Lookup resolves a unit token for the kind. The token is normalized with
// NormalizeToken before matching.
func (t *Table) Lookup(kind Kind, token string) (UnitDefinition, error) {
	key := NormalizeToken(token)
	if def, ok := t.byAlias[kind][key]; ok {
		return def.clone(), nil
	}

	return UnitDefinition{}, &UnknownUnitError{QuantityKind: kind, Token: key}
}

// Factor returns the multiplicative factor from the token's unit to SI.
func (t *Table) Factor(kind Kind, token string) (float64, error) {
	def, err := t.Lookup(kind, token)
	if err != nil {
		return 0, err
	}

	return def.FactorToSI, nil
}

// FromSI expresses an SI value of the kind in the unit named by token. A result
// that overflows float64 is reported as a non-finite ParseError.
func (t *Table) FromSI(kind Kind, si float64, token string) (float64, error) {
	def, err := t.Lookup(kind, token)
	if err != nil {
		return 0, err
	}

	v := def.FromSI(si)
	if math.IsInf(v, 0) {
		in := strconv.FormatFloat(si, 'g', -1, 64) + " " + kind.SIUnit()

		return 0, &ParseError{Input: in, Value: in, Reason: ReasonNonFinite}
	}

	return v, nil
}

// Kinds returns the kinds known to the table in definition order.
func (t *Table) Kinds() []Kind { return slices.Clone(t.kinds) }

// Units returns copies of the unit definitions of the kind in definition order.
func (t *Table) Units(kind Kind) []UnitDefinition {
	out := make([]UnitDefinition, 0, len(t.units[kind]))
	for _, def := range t.units[kind] {
		out = append(out, def.clone())
	}

	return out
}

// Aliases returns every normalized alias of the kind, sorted.
func (t *Table) Aliases(kind Kind) []string {
	out := make([]string, 0, len(t.byAlias[kind]))
	for alias := range t.byAlias[kind] {
		out = append(out, alias)
	}
	slices.Sort(out)

	return out
}

func (u *UnitDefinition) clone() UnitDefinition {
	c := *u
	c.Aliases = slices.Clone(u.Aliases)

	return c
}
