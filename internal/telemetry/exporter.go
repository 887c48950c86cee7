// Package telemetry exports option changes as OTLP trace spans.
package telemetry

import (
	"context"
	"os"
	"strings"

	"edgedemo/internal/state"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Exporter records spans for dispatched actions.
// A nil *Exporter is valid and records nothing.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates an exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured. Spans are batched and
// exported in the background so recording never waits on the collector.
func New(ctx context.Context, serviceName string) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return newExporter(serviceName, sdktrace.WithBatcher(exporter)), nil
}

// NewWithSpanExporter builds an exporter that hands each span to exp as
// soon as it ends. Meant for in-memory exporters.
func NewWithSpanExporter(exp sdktrace.SpanExporter, serviceName string) *Exporter {
	return newExporter(serviceName, sdktrace.WithSyncer(exp))
}

func newExporter(serviceName string, processor sdktrace.TracerProviderOption) *Exporter {
	if serviceName == "" {
		serviceName = "edgedemo"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		processor,
		sdktrace.WithResource(res),
	)
	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer("edgedemo/ui"),
	}
}

// RecordAction emits one span describing an applied action and the
// resulting options.
func (e *Exporter) RecordAction(ctx context.Context, tab string, a state.Action, next state.Options) {
	if e == nil {
		return
	}
	_, span := e.tracer.Start(ctx, "options."+a.Name())
	span.SetAttributes(
		attribute.String("edgedemo.tab", tab),
		attribute.String("edgedemo.action", a.Name()),
		attribute.Int("edgedemo.cards", next.CardCount),
		attribute.String("edgedemo.top", next.TopStyle.String()),
		attribute.String("edgedemo.bottom", next.BottomStyle.String()),
		attribute.Bool("edgedemo.large_title", next.LargeTitle),
		attribute.Bool("edgedemo.floating_bar", next.FloatingBar),
	)
	span.End()
}

// Listener returns a store listener that records every change for tab.
func (e *Exporter) Listener(tab string) state.Listener {
	return func(_, next state.Options, a state.Action) {
		e.RecordAction(context.Background(), tab, a, next)
	}
}

// Shutdown flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
