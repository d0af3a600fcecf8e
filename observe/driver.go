package observe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"

	"github.com/amp-labs/amp-automata/dynamic"
)

// Options controls which parts of the ambient stack a driver engages.
type Options struct {
	// Logger receives run lifecycle records. Nil disables logging.
	Logger Logger

	// EnableMetrics records the Prometheus counters and histograms.
	EnableMetrics bool

	// EnableTracing opens an OpenTelemetry span per run.
	EnableTracing bool
}

// DefaultOptions returns the standard production options: slog logging,
// metrics, and tracing all on.
func DefaultOptions() Options {
	return Options{
		Logger:        NewDefaultLogger(),
		EnableMetrics: true,
		EnableTracing: true,
	}
}

// WithLogger replaces the logger. Pass nil to disable logging.
func (o Options) WithLogger(logger Logger) Options {
	o.Logger = logger

	return o
}

// WithMetrics enables/disables metric recording.
func (o Options) WithMetrics(enable bool) Options {
	o.EnableMetrics = enable

	return o
}

// WithTracing enables/disables span creation.
func (o Options) WithTracing(enable bool) Options {
	o.EnableTracing = enable

	return o
}

// Driver runs one automaton with the ambient stack attached: a UUIDv7
// correlation ID per run, structured logs, an OpenTelemetry span, and
// Prometheus metrics. The wrapped blueprint stays untouched; drivers for
// the same blueprint can coexist with bare instances of it.
//
// A Driver is safe for concurrent use when the underlying blueprint is,
// because every run steps its own instance.
type Driver[A, K any] struct {
	name      string
	blueprint dynamic.Blueprint[A, K]
	logger    Logger
	metrics   bool
	tracing   bool
	runs      atomic.Int64
}

// NewDriver creates a driver for the blueprint. The name labels every
// log record, span, and metric the driver emits.
func NewDriver[A, K any](name string, blueprint dynamic.Blueprint[A, K], opts Options) *Driver[A, K] {
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &Driver[A, K]{
		name:      name,
		blueprint: blueprint,
		logger:    logger,
		metrics:   opts.EnableMetrics,
		tracing:   opts.EnableTracing,
	}
}

// NewDefaultDriver creates a driver with DefaultOptions.
func NewDefaultDriver[A, K any](name string, blueprint dynamic.Blueprint[A, K]) *Driver[A, K] {
	return NewDriver(name, blueprint, DefaultOptions())
}

// Name returns the driver's automaton name.
func (d *Driver[A, K]) Name() string {
	return d.name
}

// RunCount returns the number of runs started over the driver's lifetime.
func (d *Driver[A, K]) RunCount() int64 {
	return d.runs.Load()
}

// Run drives a fresh instance over word and classifies the final state.
// Step errors come back wrapped with the failing symbol index; the
// underlying error kind still matches under errors.Is. Symbol values
// never appear in the telemetry, only counts and indexes.
func (d *Driver[A, K]) Run(ctx context.Context, word []A) (K, error) {
	var zero K

	uuid7, err := uuid.NewV7()
	if err != nil {
		return zero, fmt.Errorf("error generating UUID: %w", err)
	}

	runID := uuid7.String()
	runNumber := d.runs.Inc()

	var span trace.Span

	if d.tracing {
		ctx, span = startRunSpan(ctx, d.name, runID, len(word))
		defer span.End()
	}

	d.logger.Debug(ctx, "Run started",
		"automaton", d.name,
		"run_id", runID,
		"run_number", runNumber,
		"symbols", len(word),
	)

	start := time.Now()
	sort, consumed, runErr := d.drive(word)
	duration := time.Since(start)

	if d.metrics {
		label := sanitizeAutomaton(d.name)
		outcome := outcomeSuccess

		if runErr != nil {
			outcome = outcomeError
		}

		runsTotal.WithLabelValues(label, outcome).Inc()
		symbolsTotal.WithLabelValues(label).Add(float64(consumed))
		runDuration.WithLabelValues(label, outcome).Observe(duration.Seconds())
	}

	if runErr != nil {
		if span != nil {
			span.RecordError(runErr)
			span.SetStatus(codes.Error, runErr.Error())
			span.SetAttributes(attribute.String("outcome", outcomeError))
		}

		d.logger.Error(ctx, "Run failed",
			"automaton", d.name,
			"run_id", runID,
			"duration_ms", duration.Milliseconds(),
			"symbols", consumed,
			"error", runErr,
		)

		return zero, runErr
	}

	if span != nil {
		span.SetStatus(codes.Ok, "completed")
		span.SetAttributes(attribute.String("outcome", outcomeSuccess))
	}

	d.logger.Info(ctx, "Run completed",
		"automaton", d.name,
		"run_id", runID,
		"duration_ms", duration.Milliseconds(),
		"symbols", consumed,
		"outcome", outcomeSuccess,
	)

	return sort, nil
}

// drive steps a fresh instance over word and classifies it, reporting
// how many symbols were consumed before any failure.
func (d *Driver[A, K]) drive(word []A) (K, int, error) {
	var zero K

	instance := d.blueprint.Instance()

	for index, symbol := range word {
		if err := instance.Step(symbol); err != nil {
			return zero, index, fmt.Errorf("symbol %d: %w", index, err)
		}
	}

	sort, err := instance.Sort()
	if err != nil {
		return zero, len(word), fmt.Errorf("classify after %d symbols: %w", len(word), err)
	}

	return sort, len(word), nil
}
