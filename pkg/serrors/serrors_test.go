package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"unitconv/pkg/serrors"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

type kindedError struct{ k serrors.Kind }

func (e *kindedError) Error() string       { return "kinded" }
func (e *kindedError) Kind() serrors.Kind { return e.k }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("table missing")

	e1 := serrors.With(serrors.ErrNotFound, "operation %q not found", "warp")
	require.Equal(t, `operation "warp" not found`, e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrInternal, base, "loading units")
	require.Equal(t, "loading units: table missing", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "reading")

	require.ErrorIs(t, e, serrors.ErrBadRequest)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "bad quantity")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "bad quantity", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	custom := serrors.NewKind("CUSTOM")

	require.Nil(t, serrors.KindOf(nil))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.KindOnly(serrors.ErrNotFound)))
	require.Equal(t, custom, serrors.KindOf(fmt.Errorf("wrapped: %w", &kindedError{k: custom})))

	// the outermost kind wins
	inner := &kindedError{k: custom}
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(serrors.Wrap(serrors.ErrBadRequest, inner, "outer")))
}
