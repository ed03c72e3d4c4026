package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hxo-dev/hxo/pkg/scheduler"
)

// Default tracer name.
const defaultTracerName = "hxo"

// FlushSpanName is the name of the span recorded for each flush.
const FlushSpanName = "hxo.flush"

// TracerConfig configures Tracer.
type TracerConfig struct {
	// TracerName is the name of the tracer (default: "hxo").
	TracerName string

	// Provider supplies the tracer. If nil, the global provider is used.
	Provider trace.TracerProvider

	// Attributes are added to every span.
	Attributes []attribute.KeyValue
}

// TracerOption configures Tracer.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(p trace.TracerProvider) TracerOption {
	return func(c *TracerConfig) {
		c.Provider = p
	}
}

// WithAttributes adds attributes to every span.
func WithAttributes(attrs ...attribute.KeyValue) TracerOption {
	return func(c *TracerConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// Tracer records a span per flush. It implements scheduler.Observer.
type Tracer struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
	ctx    context.Context
}

var _ scheduler.Observer = (*Tracer)(nil)

// NewTracer creates a Tracer.
func NewTracer(opts ...TracerOption) *Tracer {
	config := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	var tracer trace.Tracer
	if config.Provider != nil {
		tracer = config.Provider.Tracer(config.TracerName)
	} else {
		tracer = otel.Tracer(config.TracerName)
	}
	return &Tracer{tracer: tracer, attrs: config.Attributes, ctx: context.Background()}
}

// WithContext returns a copy of t whose spans are children of the span
// in ctx.
func (t *Tracer) WithContext(ctx context.Context) *Tracer {
	c := *t
	c.ctx = ctx
	return &c
}

// FlushDone implements scheduler.Observer. The span covers the flush's
// own start and end time.
func (t *Tracer) FlushDone(stats scheduler.FlushStats) {
	attrs := append([]attribute.KeyValue{
		attribute.Int("hxo.jobs", stats.Jobs),
		attribute.Int("hxo.jobs_ran", stats.Ran),
	}, t.attrs...)

	_, span := t.tracer.Start(t.ctx, FlushSpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
		trace.WithTimestamp(stats.Start),
	)

	if stats.Err != nil {
		span.RecordError(stats.Err)
		span.SetStatus(codes.Error, stats.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(stats.Start.Add(stats.Duration)))
}
