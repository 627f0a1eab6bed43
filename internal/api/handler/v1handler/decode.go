package v1handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-faster/jx"

	"unitconv/pkg/serrors"
)

// decodeBody reads at most maxBodyBytes of the request body and hands a
// decoder over it to fn. Every failure is reported as a bad request.
func (h *Handler) decodeBody(r *http.Request, fn func(d *jx.Decoder) error) error {
	data, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", tooLarge.Limit)
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if len(data) == 0 {
		return serrors.With(serrors.ErrBadRequest, "request body is empty")
	}

	if err := fn(jx.DecodeBytes(data)); err != nil {
		return serrors.With(serrors.ErrBadRequest, "invalid request body: %s", err)
	}

	return nil
}
