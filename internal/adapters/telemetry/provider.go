package telemetry

import (
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/base47/internal/core/ports"
)

// TracerName is the instrumentation name of every base47 span.
const TracerName = "go.trai.ch/base47"

// NewProvider builds a TracerProvider and registers it globally.
// With verbose set, finished spans are written to logger.
func NewProvider(logger ports.Logger, verbose bool) *sdktrace.TracerProvider {
	var opts []sdktrace.TracerProviderOption
	if verbose {
		opts = append(opts, sdktrace.WithSpanProcessor(NewBridge(logger)))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}

// Tracer returns the base47 tracer of tp.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	return tp.Tracer(TracerName)
}
