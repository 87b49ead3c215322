// Package telemetry configures OpenTelemetry tracing.
package telemetry

import (
	"context"
	"github.com/myrjola/smartcop/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"io"
	"log/slog"
)

// InitTracer installs the global tracer provider and returns its shutdown function.
//
// Spans are exported to w when it's not nil. Otherwise spans are recorded but dropped, which keeps trace context
// propagation working without an exporter.
func InitTracer(
	ctx context.Context,
	serviceName string,
	w io.Writer,
	logger *slog.Logger,
) (func(context.Context) error, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", serviceName)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "merge resource")
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if w != nil {
		var exporter *stdouttrace.Exporter
		if exporter, err = stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint()); err != nil {
			return nil, errors.Wrap(err, "new stdout exporter")
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	logger.LogAttrs(ctx, slog.LevelInfo, "OpenTelemetry initialized",
		slog.String("service", serviceName), slog.Bool("export", w != nil))

	return tp.Shutdown, nil
}
