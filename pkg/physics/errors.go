package physics

import (
	"fmt"

	"unitconv/pkg/serrors"
)

// ErrDomain is the kind of errors raised for physically invalid arguments.
var ErrDomain = serrors.NewKind("DOMAIN_ERROR")

// DomainError reports an argument outside the formula's physical domain.
type DomainError struct {
	// Param names the offending argument.
	Param string
	// Value is the rejected value.
	Value float64
	// Reason is a short description such as "must be positive".
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %s (got %v)", e.Param, e.Reason, e.Value)
}

// Kind returns ErrDomain.
func (e *DomainError) Kind() serrors.Kind { return ErrDomain }

// Is matches ErrDomain and serrors.ErrBadRequest.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain || target == serrors.ErrBadRequest
}

func positive(param string, v float64) error {
	if v <= 0 {
		return &DomainError{Param: param, Value: v, Reason: "must be positive"}
	}

	return nil
}

func nonNegative(param string, v float64) error {
	if v < 0 {
		return &DomainError{Param: param, Value: v, Reason: "cannot be negative"}
	}

	return nil
}
