// Package otelbox bridges injector build hooks to OpenTelemetry traces.
// Every cell build becomes a span; nested builds become child spans, so the
// trace of a cold bootstrap shows the whole construction tree with timings.
package otelbox

import (
	"context"
	"sync"

	"github.com/sghaida/wirebox/di"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Setup configures an OTLP trace exporter and returns hooks that trace
// injector builds, plus a shutdown function flushing pending spans. If
// endpoint is empty, no telemetry is configured and the returned hooks are
// empty.
func Setup(endpoint, service string) (di.Hooks, func(context.Context) error, error) {
	if endpoint == "" {
		return di.Hooks{}, func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return di.Hooks{}, nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	return Hooks(otel.Tracer("wirebox")), tp.Shutdown, nil
}

// Hooks returns build hooks opening one span per build on tracer. The
// parent span is looked up from the enclosing frame of the event path, so
// a build triggered inside another build shows up as its child.
func Hooks(tracer trace.Tracer) di.Hooks {
	b := &bridge{tracer: tracer}
	return di.Hooks{
		OnStart:   b.start,
		OnSuccess: b.success,
		OnFailure: b.failure,
	}
}

type bridge struct {
	tracer trace.Tracer
	spans  sync.Map // cell name -> spanEntry
}

type spanEntry struct {
	ctx  context.Context
	span trace.Span
}

func (b *bridge) start(ev di.Event) {
	parent := context.Background()
	if n := len(ev.Path); n > 1 {
		if v, ok := b.spans.Load(ev.Path[n-2]); ok {
			parent = v.(spanEntry).ctx
		}
	}
	ctx, span := b.tracer.Start(parent, "di.build")
	span.SetAttributes(
		attribute.String("di.cell", ev.Cell),
		attribute.Int("di.depth", len(ev.Path)),
	)
	b.spans.Store(ev.Cell, spanEntry{ctx: ctx, span: span})
}

func (b *bridge) success(ev di.Event) {
	b.end(ev.Cell, nil)
}

func (b *bridge) failure(ev di.Event) {
	b.end(ev.Cell, ev.Err)
}

func (b *bridge) end(cell string, buildErr error) {
	v, ok := b.spans.LoadAndDelete(cell)
	if !ok {
		return
	}
	span := v.(spanEntry).span
	if buildErr != nil {
		span.RecordError(buildErr)
	}
	span.End()
}
