package errors_test

import (
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/stretchr/testify/require"
	"log/slog"
	"slices"
	"testing"
)

func TestAnnotatedError(t *testing.T) {
	err := errors.New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())

	// Assert that wrapping sentinel errors work as expected.
	sentinel := errors.NewSentinel("test error")
	require.NotErrorIs(t, err, errors.NewSentinel("test error"))
	wrapped := errors.Wrap(sentinel, "wrapping", slog.String("case_id", "CASE-2024-000001"))
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "wrapping: test error", wrapped.Error())

	// Ensure log values are coming through.
	var annotated *errors.AnnotatedError
	require.True(t, errors.As(err, &annotated))
	group := annotated.LogValue().Group()
	require.Contains(t, group, slog.String("id", "123"))

	// Assert there's a valid source
	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	require.NotEqual(t, -1, sourceIdx)
	source := group[sourceIdx]
	require.Contains(t, source.Value.String(), "annotatederror_test.go")
}

func TestWrap_flattensAttributes(t *testing.T) {
	inner := errors.New("inner", slog.String("field", "age"))
	outer := errors.Wrap(inner, "outer", slog.String("locale", "hi"))

	var annotated *errors.AnnotatedError
	require.True(t, errors.As(outer, &annotated))
	group := annotated.LogValue().Group()
	require.Contains(t, group, slog.String("field", "age"))
	require.Contains(t, group, slog.String("locale", "hi"))
}

func TestWrap_nil(t *testing.T) {
	require.NoError(t, errors.Wrap(nil, "nothing to wrap"))
}

func TestSlogError(t *testing.T) {
	plain := errors.NewSentinel("plain")
	require.Equal(t, slog.String("error", "plain"), errors.SlogError(plain))

	attr := errors.SlogError(errors.Wrap(plain, "annotated"))
	require.Equal(t, "error", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Resolve().Kind())
}
