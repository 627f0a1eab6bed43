package units

import (
	"fmt"

	"unitconv/pkg/serrors"
)

var (
	// ErrParse is the kind shared by all malformed-input errors.
	ErrParse = serrors.NewKind("PARSE_ERROR")
	// ErrUnknownUnit is the kind of errors raised for tokens missing from the table.
	ErrUnknownUnit = serrors.NewKind("UNKNOWN_UNIT")
)

// Reasons reported by ParseError.
const (
	ReasonEmpty     = "empty input"
	ReasonInvalid   = "invalid numeric value"
	ReasonMissing   = "missing unit"
	ReasonNonFinite = "non-finite magnitude"
)

// ParseError reports a malformed quantity string.
type ParseError struct {
	// Input is the full string handed to the parser.
	Input string
	// Value is the offending substring, if any.
	Value string
	// Reason is one of the Reason* constants.
	Reason string

	err error
}

func (e *ParseError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("could not parse %q: %s %q", e.Input, e.Reason, e.Value)
	}

	return fmt.Sprintf("could not parse %q: %s", e.Input, e.Reason)
}

// Unwrap returns the underlying strconv error, if any.
func (e *ParseError) Unwrap() error { return e.err }

// Kind returns ErrParse.
func (e *ParseError) Kind() serrors.Kind { return ErrParse }

// Is matches ErrParse and serrors.ErrBadRequest.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse || target == serrors.ErrBadRequest
}

// UnknownUnitError reports a unit token with no table entry for the kind.
type UnknownUnitError struct {
	// QuantityKind is the kind whose table was searched.
	QuantityKind Kind
	// Token is the normalized token that was looked up.
	Token string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown %s unit %q", e.QuantityKind, e.Token)
}

// Kind returns ErrUnknownUnit.
func (e *UnknownUnitError) Kind() serrors.Kind { return ErrUnknownUnit }

// Is matches ErrUnknownUnit and serrors.ErrBadRequest.
func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit || target == serrors.ErrBadRequest
}
