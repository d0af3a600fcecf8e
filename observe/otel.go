package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// startRunSpan creates the root span for one automaton run.
// Uses the global tracer initialized by the telemetry package.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startRunSpan(ctx context.Context, name, runID string, inputLength int) (context.Context, trace.Span) {
	tracer := otel.Tracer("automaton")
	ctx, span := tracer.Start(ctx, "automaton.run")
	span.SetAttributes(
		attribute.String("automaton", name),
		attribute.String("run_id", runID),
		attribute.Int("input_length", inputLength),
	)

	return ctx, span
}
