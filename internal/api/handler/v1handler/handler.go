// Package v1handler implements the /v1 JSON API on top of calculator.Service.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"

	"unitconv/internal/calculator"
	"unitconv/pkg/logger"
	"unitconv/pkg/serrors"
)

// DefaultMaxBodyBytes bounds request bodies when no limit is configured.
const DefaultMaxBodyBytes = 64 << 10

// Deps holds the services the handler delegates to.
type Deps struct {
	Calculator calculator.Service
}

// Option configures a Handler.
type Option func(h *Handler)

// WithMeterProvider records request counts and latencies with mp.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(h *Handler) { h.meterProvider = mp }
}

// WithMaxBodyBytes limits the size of JSON request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

type Handler struct {
	deps          Deps
	maxBodyBytes  int64
	meterProvider metric.MeterProvider

	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func New(deps Deps, opts ...Option) *Handler {
	h := &Handler{
		deps:          deps,
		maxBodyBytes:  DefaultMaxBodyBytes,
		meterProvider: noop.NewMeterProvider(),
	}
	for _, opt := range opts {
		opt(h)
	}

	meter := h.meterProvider.Meter("unitconv/internal/api/handler/v1handler")
	// a failed instrument falls back to noop
	var err error
	if h.requests, err = meter.Int64Counter("unitconv.http.server.requests",
		metric.WithDescription("HTTP requests handled by the v1 API")); err != nil {
		h.requests = noop.Int64Counter{}
	}
	if h.duration, err = meter.Float64Histogram("unitconv.http.server.duration",
		metric.WithDescription("Duration of v1 API requests"), metric.WithUnit("s")); err != nil {
		h.duration = noop.Float64Histogram{}
	}

	return h
}

// Routes returns a mux serving every v1 endpoint under the /v1 prefix.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /v1/units", h.instrument("listUnits", h.listUnits))
	mux.Handle("POST /v1/conversions", h.instrument("convert", h.convert))
	mux.Handle("GET /v1/operations", h.instrument("listOperations", h.listOperations))
	mux.Handle("POST /v1/calculations/{operation}", h.instrument("calculate", h.calculate))

	return mux
}

// handlerFunc is an endpoint that either encodes a response or returns an error.
type handlerFunc func(r *http.Request, e *jx.Encoder) error

func (h *Handler) instrument(operation string, fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logger.WithFields(r.Context(), zap.String("api_operation", operation))
		r = r.WithContext(ctx)

		e := jx.GetEncoder()
		defer jx.PutEncoder(e)

		status := http.StatusOK
		if err := fn(r, e); err != nil {
			res := h.NewError(ctx, err)
			status = res.StatusCode
			e.Reset()
			res.Response.Encode(e)
		}

		attrs := metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.Int("status_code", status),
		)
		h.requests.Add(ctx, 1, attrs)
		h.duration.Record(ctx, time.Since(start).Seconds(), attrs)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if _, err := w.Write(e.Bytes()); err != nil {
			logger.Debug(ctx, "could not write response", zap.Error(err))
		}
	})
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string
	Message string
}

// Encode writes the error as {"code": ..., "message": ...}.
func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(r.Code)
	e.FieldStart("message")
	e.Str(r.Message)
	e.ObjEnd()
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// NewError translates err into a status code and response body. Client errors
// keep their message; anything unclassified is logged and reported as internal.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)

	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return &ErrorStatusCode{
			StatusCode: http.StatusNotFound,
			Response:   ErrorResponse{Code: kind.Error(), Message: message(err, kind, "resource not found")},
		}
	case errors.Is(err, serrors.ErrBadRequest):
		return &ErrorStatusCode{
			StatusCode: http.StatusBadRequest,
			Response:   ErrorResponse{Code: kind.Error(), Message: message(err, kind, "bad request")},
		}
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}
}

// message picks the client-facing text of err. A bare kind sentinel gets
// fallback, a semantic error its own message and typed errors their Error().
func message(err error, kind serrors.Kind, fallback string) string {
	if err == kind {
		return fallback
	}

	var semantic *serrors.Error
	if errors.As(err, &semantic) && semantic.Message() != "" {
		return semantic.Message()
	}

	return err.Error()
}
