package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"unitconv/internal/calculator"
)

// listOperations serves GET /v1/operations.
func (h *Handler) listOperations(r *http.Request, e *jx.Encoder) error {
	ops := h.deps.Calculator.Operations(r.Context())

	e.ObjStart()
	e.FieldStart("operations")
	e.ArrStart()
	for _, op := range ops {
		encodeOperation(e, op)
	}
	e.ArrEnd()
	e.ObjEnd()

	return nil
}

func encodeOperation(e *jx.Encoder, op calculator.Operation) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(op.Name)
	e.FieldStart("description")
	e.Str(op.Description)
	e.FieldStart("formula")
	e.Str(op.Formula)
	e.FieldStart("resultUnit")
	e.Str(op.ResultUnit)
	e.FieldStart("params")
	e.ArrStart()
	for _, p := range op.Params {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(p.Name)
		if p.Kind != "" {
			e.FieldStart("kind")
			e.Str(string(p.Kind))
		}
		e.FieldStart("unit")
		e.Str(p.Unit)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}
