// Package telemetry bootstraps OpenTelemetry trace and log export for
// binaries embedding this module. Configuration comes from the standard
// OTEL_* environment variables; export stays off unless explicitly enabled.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	defaultServiceName    = "amp-automata"
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second

	// gkeCollectorEndpoint is the in-cluster OpenTelemetry collector service.
	gkeCollectorEndpoint = "http://opentelemetry-collector.opentelemetry.svc.cluster.local:4318"
)

var (
	tracerProvider *sdktrace.TracerProvider
	loggerProvider *sdklog.LoggerProvider
)

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	Enabled        bool
	Timeout        time.Duration
}

// Option overrides one field of the environment-derived configuration.
type Option func(*Config)

// WithServiceName overrides the service.name resource attribute.
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// WithServiceVersion overrides the service.version resource attribute.
func WithServiceVersion(version string) Option {
	return func(c *Config) {
		c.ServiceVersion = version
	}
}

// WithEnvironment overrides the deployment environment resource attribute.
func WithEnvironment(environment string) Option {
	return func(c *Config) {
		c.Environment = environment
	}
}

// WithEndpoint overrides the OTLP collector base endpoint. An http scheme
// exports in plaintext, https uses TLS.
func WithEndpoint(endpoint string) Option {
	return func(c *Config) {
		c.Endpoint = endpoint
	}
}

// WithTimeout overrides the per-batch export timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithEnabled forces export on or off regardless of the environment.
func WithEnabled(enabled bool) Option {
	return func(c *Config) {
		c.Enabled = enabled
	}
}

// LoadConfigFromEnv loads OpenTelemetry configuration from environment
// variables. The runningEnv argument names the deployment environment; when
// empty, the ENVIRONMENT variable is consulted instead.
func LoadConfigFromEnv(runningEnv string) (*Config, error) {
	enabled, err := boolEnv("OTEL_ENABLED", false)
	if err != nil {
		return nil, err
	}

	// OTEL_SDK_DISABLED is the standard kill switch and wins over OTEL_ENABLED.
	disabled, err := boolEnv("OTEL_SDK_DISABLED", false)
	if err != nil {
		return nil, err
	}

	if disabled {
		enabled = false
	}

	// Default to the GKE OpenTelemetry collector endpoint if running in GKE
	defaultEndpoint := ""
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" { // Check if running in Kubernetes
		defaultEndpoint = gkeCollectorEndpoint
	}

	timeout, err := durationEnv("OTEL_EXPORTER_OTLP_TIMEOUT", defaultTimeout)
	if err != nil {
		return nil, err
	}

	if runningEnv == "" {
		runningEnv = os.Getenv("ENVIRONMENT")
	}

	return &Config{
		ServiceName:    stringEnv("OTEL_SERVICE_NAME", defaultServiceName),
		ServiceVersion: stringEnv("OTEL_SERVICE_VERSION", defaultServiceVersion),
		Environment:    runningEnv,
		Endpoint:       stringEnv("OTEL_EXPORTER_OTLP_ENDPOINT", defaultEndpoint),
		Enabled:        enabled,
		Timeout:        timeout,
	}, nil
}

// Initialize configures the global OpenTelemetry trace and log providers from
// the environment, applies the given overrides, and routes the process slog
// default through the OTLP bridge. The returned function flushes and stops
// both providers; it is safe to call even when export stayed disabled.
func Initialize(ctx context.Context, opts ...Option) (func(context.Context) error, error) {
	config, err := LoadConfigFromEnv("")
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if opt != nil {
			opt(config)
		}
	}

	return InitializeWithConfig(ctx, config)
}

// InitializeWithConfig is Initialize for callers carrying their own Config.
func InitializeWithConfig(ctx context.Context, config *Config) (func(context.Context) error, error) {
	if !config.Enabled {
		slog.Info("OpenTelemetry export is disabled")

		return Shutdown, nil
	}

	if config.Endpoint == "" {
		slog.Warn("OpenTelemetry endpoint not configured, export will be disabled")

		return Shutdown, nil
	}

	// Create resource with service information
	attrs := []attribute.KeyValue{
		attribute.String("service.name", config.ServiceName),
		attribute.String("service.version", config.ServiceVersion),
	}
	if config.Environment != "" {
		attrs = append(attrs, attribute.String("deployment.environment.name", config.Environment))
	}

	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.Endpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	logExporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(config.Endpoint),
		otlploghttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	loggerProvider = sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	// Set the global providers
	otel.SetTracerProvider(tracerProvider)
	global.SetLoggerProvider(loggerProvider)

	// Set the global propagator to support trace context propagation
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	// Route the process default logger through the bridge so slog records
	// reach the collector alongside spans.
	slog.SetDefault(otelslog.NewLogger(config.ServiceName,
		otelslog.WithLoggerProvider(loggerProvider)))

	slog.Info("OpenTelemetry export initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"environment", config.Environment,
		"endpoint", config.Endpoint,
	)

	return Shutdown, nil
}

// Shutdown flushes buffered telemetry and stops the global trace and log
// providers. It is a no-op when Initialize never ran or stayed disabled.
func Shutdown(ctx context.Context) error {
	if tracerProvider == nil && loggerProvider == nil {
		return nil
	}

	slog.Info("Shutting down OpenTelemetry providers")

	var errs []error

	if tracerProvider != nil {
		if err := tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down tracer provider: %w", err))
		}

		tracerProvider = nil
	}

	if loggerProvider != nil {
		if err := loggerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down logger provider: %w", err))
		}

		loggerProvider = nil
	}

	return errors.Join(errs...)
}

func stringEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", key, err)
	}

	return value, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}

	return value, nil
}
