package logging_test

import (
	"bytes"
	"context"
	"github.com/myrjola/smartcop/internal/logging"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(&buf, nil)))
	logger = logger.With("source", "test")

	ctx := logging.WithAttrs(context.Background(), slog.String("draft_id", "abc"))
	ctx = logging.WithAttrs(ctx, slog.String("request_id", "123"))
	logger.InfoContext(ctx, "hello")

	out := buf.String()
	require.Contains(t, out, "draft_id=abc")
	require.Contains(t, out, "request_id=123")
	require.Contains(t, out, "source=test")
}

func TestWithAttrs_siblingsDoNotShare(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(&buf, nil)))

	parent := logging.WithAttrs(context.Background(), slog.String("a", "1"))
	first := logging.WithAttrs(parent, slog.String("b", "2"))
	_ = logging.WithAttrs(parent, slog.String("c", "3"))
	logger.InfoContext(first, "first")

	require.Contains(t, buf.String(), "b=2")
	require.NotContains(t, buf.String(), "c=3")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "nonsense", want: slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}
