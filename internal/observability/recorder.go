// Package observability persists run records for later inspection.
//
// The Recorder interface is the narrow seam between the pipeline and
// the tracing backend: components call Record(run) and move on. The
// production recorder emits OpenTelemetry spans through an OTLP HTTP
// exporter (a local collector endpoint, the same agent-mode setup as
// any OTLP-speaking backend). When the exporter cannot be created the
// setup degrades to a slog-only recorder instead of failing; run
// recording is never on the critical path of producing an answer or
// a score.
package observability

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// RunData is one recorded unit of work: a query run, a verdict, or a
// whole evaluation report.
type RunData struct {
	ID       uuid.UUID         // Unique run identifier
	Name     string            // Human-readable run name (e.g. "agent.answer")
	Kind     string            // "query", "verdict", or "report"
	Duration time.Duration     // Wall-clock duration, zero if not measured
	Attrs    map[string]string // Backend-visible attributes
}

// Recorder persists run records. Implementations must be safe to call
// from the answer path: they log-and-continue rather than fail.
type Recorder interface {
	Record(ctx context.Context, run RunData)
}

// Config for the tracing exporter.
type Config struct {
	// Endpoint is the OTLP HTTP collector endpoint (default: localhost:4318)
	Endpoint string
	// Environment is the deployment environment (dev, staging, prod)
	Environment string
	// ServiceName is the service name shown in the tracing backend
	ServiceName string
}

// DefaultEndpoint is the default OTLP HTTP collector endpoint.
const DefaultEndpoint = "localhost:4318"

// Setup creates the production Recorder.
//
// It wires an OTLP HTTP span exporter into a dedicated TracerProvider.
// If the exporter cannot be created, recording degrades to slog output
// and the returned shutdown is a no-op. The collaborator being down
// must not take the pipeline with it.
func Setup(ctx context.Context, cfg Config, logger *slog.Logger) (Recorder, func(context.Context) error) {
	if logger == nil {
		logger = slog.Default()
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collector, no TLS
	)
	if err != nil {
		logger.Warn("failed to create trace exporter, recording runs to log only", "error", err)
		return NewLogRecorder(logger), func(context.Context) error { return nil }
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)

	logger.Debug("run recording enabled",
		"endpoint", endpoint,
		"service", cfg.ServiceName,
		"environment", cfg.Environment,
	)

	rec := &otelRecorder{
		tracer: tp.Tracer("moems-agent"),
		attrs: []attribute.KeyValue{
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("deployment.environment", cfg.Environment),
		},
	}
	return rec, tp.Shutdown
}

// otelRecorder emits one span per recorded run.
type otelRecorder struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

func (r *otelRecorder) Record(ctx context.Context, run RunData) {
	end := time.Now()
	start := end.Add(-run.Duration)

	_, span := r.tracer.Start(ctx, run.Name,
		trace.WithTimestamp(start),
	)
	span.SetAttributes(r.attrs...)
	span.SetAttributes(
		attribute.String("run.id", run.ID.String()),
		attribute.String("run.kind", run.Kind),
	)
	for k, v := range run.Attrs {
		span.SetAttributes(attribute.String("run."+k, v))
	}
	span.End(trace.WithTimestamp(end))
}

// LogRecorder writes run records to the logger. Used directly as the
// degraded mode and in development.
type LogRecorder struct {
	logger *slog.Logger
}

// NewLogRecorder creates a Recorder that logs runs at debug level.
func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(ctx context.Context, run RunData) {
	args := []any{
		"run_id", run.ID.String(),
		"kind", run.Kind,
		"duration", run.Duration,
	}
	for k, v := range run.Attrs {
		args = append(args, k, v)
	}
	r.logger.DebugContext(ctx, "run recorded: "+run.Name, args...)
}

// Nop is a Recorder that discards everything. Test use.
type Nop struct{}

func (Nop) Record(context.Context, RunData) {}
