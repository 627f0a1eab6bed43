package v1handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"unitconv/pkg/serrors"
	"unitconv/pkg/units"
)

// ConversionRequest is the body of POST /v1/conversions.
type ConversionRequest struct {
	Kind  string
	Value string
	To    string
}

// Decode reads the request from d. Unknown fields are ignored.
func (c *ConversionRequest) Decode(d *jx.Decoder) error {
	return d.ObjBytes(func(d *jx.Decoder, key []byte) error { //nolint: wrapcheck
		var err error
		switch string(key) {
		case "kind":
			c.Kind, err = d.Str()
		case "value":
			c.Value, err = d.Str()
		case "to":
			c.To, err = d.Str()
		default:
			return d.Skip() //nolint: wrapcheck
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", key)
		}

		return nil
	})
}

// convert serves POST /v1/conversions.
func (h *Handler) convert(r *http.Request, e *jx.Encoder) error {
	var req ConversionRequest
	if err := h.decodeBody(r, req.Decode); err != nil {
		return err
	}
	if req.Kind == "" {
		return serrors.With(serrors.ErrBadRequest, `field "kind" is required`)
	}

	kind, err := units.ParseKind(req.Kind)
	if err != nil {
		return err //nolint: wrapcheck
	}

	conv, err := h.deps.Calculator.Convert(r.Context(), kind, req.Value, req.To)
	if err != nil {
		return err //nolint: wrapcheck
	}
	conv.Encode(e)

	return nil
}
