package calculator

import (
	"context"

	"unitconv/pkg/domain"
	"unitconv/pkg/units"
)

// Service is the entry point used by the CLI and the HTTP API.
//
//go:generate mockgen -package mockcalculator -source=interface.go -destination=mock/mockcalculator.go *
type Service interface {
	// Convert parses text as a quantity of kind and, when target is not empty,
	// expresses the SI value in the target unit of the same kind.
	Convert(ctx context.Context, kind units.Kind, text string, target string) (*domain.Conversion, error)
	// Evaluate runs the named operation with arguments keyed by parameter name.
	Evaluate(ctx context.Context, operation string, args map[string]Arg) (*domain.Calculation, error)
	// Operations lists the available operations.
	Operations(ctx context.Context) []Operation
	// Units lists the unit definitions of kind, or of every kind when kind is empty.
	Units(ctx context.Context, kind units.Kind) ([]units.UnitDefinition, error)
}
