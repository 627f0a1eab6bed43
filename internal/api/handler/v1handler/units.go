package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"unitconv/pkg/units"
)

// listUnits serves GET /v1/units[?kind=].
func (h *Handler) listUnits(r *http.Request, e *jx.Encoder) error {
	var kind units.Kind
	if name := r.URL.Query().Get("kind"); name != "" {
		var err error
		if kind, err = units.ParseKind(name); err != nil {
			return err //nolint: wrapcheck
		}
	}

	defs, err := h.deps.Calculator.Units(r.Context(), kind)
	if err != nil {
		return err //nolint: wrapcheck
	}

	e.ObjStart()
	e.FieldStart("units")
	e.ArrStart()
	for _, def := range defs {
		encodeUnit(e, def)
	}
	e.ArrEnd()
	e.ObjEnd()

	return nil
}

func encodeUnit(e *jx.Encoder, def units.UnitDefinition) {
	e.ObjStart()
	e.FieldStart("kind")
	e.Str(string(def.Kind))
	e.FieldStart("name")
	e.Str(def.Name)
	e.FieldStart("symbol")
	e.Str(def.Symbol)
	e.FieldStart("aliases")
	e.ArrStart()
	for _, alias := range def.Aliases {
		e.Str(alias)
	}
	e.ArrEnd()
	e.FieldStart("factorToSI")
	e.Float64(def.FactorToSI)
	e.ObjEnd()
}
