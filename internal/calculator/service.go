package calculator

import (
	"context"
	"time"

	"unitconv/pkg/domain"
	"unitconv/pkg/logger"
	"unitconv/pkg/metrics"
	"unitconv/pkg/serrors"
	"unitconv/pkg/units"

	"go.uber.org/zap"
)

// service is the concrete implementation of the Service interface.
type service struct {
	calc    *Calculator
	metrics *metrics.Metrics
}

// NewService creates a Service backed by calc. m may be nil to disable metrics.
func NewService(calc *Calculator, m *metrics.Metrics) Service {
	if calc == nil {
		calc = New(nil)
	}

	return &service{calc: calc, metrics: m}
}

// Convert normalizes text to SI and optionally re-expresses it in target.
func (s *service) Convert(ctx context.Context, kind units.Kind, text string, target string) (*domain.Conversion, error) {
	ctx = logger.WithFields(ctx, zap.String("kind", string(kind)), zap.String("input", text))

	conv, err := s.convert(kind, text, target)
	s.metrics.ObserveConversion(string(kind), err)
	if err != nil {
		logger.Info(ctx, "conversion rejected", zap.Error(err))

		return nil, err
	}

	logger.Debug(ctx, "converted quantity", zap.Float64("si", conv.SI), zap.String("target", conv.Target))

	return conv, nil
}

func (s *service) convert(kind units.Kind, text string, target string) (*domain.Conversion, error) {
	q, err := s.calc.parser.ParseQuantity(kind, text)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	conv := &domain.Conversion{
		Kind:      string(kind),
		Input:     text,
		Magnitude: q.Magnitude,
		Unit:      q.Unit.Name,
		SI:        q.SI,
		SIUnit:    kind.SIUnit(),
		Value:     q.SI,
	}

	if target != "" {
		table := s.calc.parser.Table()
		def, err := table.Lookup(kind, target)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		if conv.Value, err = table.FromSI(kind, q.SI, target); err != nil {
			return nil, err //nolint: wrapcheck
		}
		conv.Target = def.Symbol
	}

	return conv, nil
}

// Evaluate looks up the operation and runs it with args.
func (s *service) Evaluate(ctx context.Context, operation string, args map[string]Arg) (*domain.Calculation, error) {
	ctx = logger.WithFields(ctx, zap.String("operation", operation))

	op, ok := LookupOperation(operation)
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "unknown operation %q", operation)
	}

	start := time.Now()
	res, err := op.Evaluate(s.calc, args)
	s.metrics.ObserveCalculation(op.Name, time.Since(start), err)
	if err != nil {
		logger.Info(ctx, "calculation rejected", zap.Error(err))

		return nil, err
	}

	logger.Debug(ctx, "calculated", zap.Float64("result", res.Result), zap.String("unit", res.Unit))

	return &res, nil
}

// Operations returns the operation registry.
func (s *service) Operations(_ context.Context) []Operation {
	return Operations()
}

// Units lists the unit definitions of kind, or all of them when kind is empty.
func (s *service) Units(_ context.Context, kind units.Kind) ([]units.UnitDefinition, error) {
	table := s.calc.parser.Table()
	if kind == "" {
		var all []units.UnitDefinition
		for _, k := range table.Kinds() {
			all = append(all, table.Units(k)...)
		}

		return all, nil
	}

	defs := table.Units(kind)
	if len(defs) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "no units registered for kind %q", kind)
	}

	return defs, nil
}
