package v1handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"unitconv/internal/calculator"
)

// CalculationRequest is the body of POST /v1/calculations/{operation}.
type CalculationRequest struct {
	// Args maps parameter names to a bare SI number or a unit string.
	Args map[string]calculator.Arg
}

// Decode reads the request from d. Argument values must be numbers or strings.
func (c *CalculationRequest) Decode(d *jx.Decoder) error {
	c.Args = make(map[string]calculator.Arg)

	return d.ObjBytes(func(d *jx.Decoder, key []byte) error { //nolint: wrapcheck
		if string(key) != "args" {
			return d.Skip() //nolint: wrapcheck
		}

		return d.Obj(func(d *jx.Decoder, name string) error {
			switch tt := d.Next(); tt {
			case jx.Number:
				v, err := d.Float64()
				if err != nil {
					return errors.Wrapf(err, "decode argument %q", name)
				}
				c.Args[name] = calculator.Numeric(v)
			case jx.String:
				s, err := d.Str()
				if err != nil {
					return errors.Wrapf(err, "decode argument %q", name)
				}
				c.Args[name] = calculator.Text(s)
			default:
				return errors.Errorf("argument %q must be a number or a string, got %s", name, tt)
			}

			return nil
		})
	})
}

// calculate serves POST /v1/calculations/{operation}.
func (h *Handler) calculate(r *http.Request, e *jx.Encoder) error {
	var req CalculationRequest
	if err := h.decodeBody(r, req.Decode); err != nil {
		return err
	}

	res, err := h.deps.Calculator.Evaluate(r.Context(), r.PathValue("operation"), req.Args)
	if err != nil {
		return err //nolint: wrapcheck
	}
	res.Encode(e)

	return nil
}
