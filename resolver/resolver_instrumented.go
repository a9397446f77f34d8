package resolver

import (
	"context"
	"time"

	"foodscout/openfoodfacts"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Instrumented wraps a Resolver with tracing and metrics.
type Instrumented struct {
	inner  *Resolver
	tracer trace.Tracer
	meter  metric.Meter
}

func NewInstrumented(inner *Resolver, tracer trace.Tracer, meter metric.Meter) *Instrumented {
	return &Instrumented{inner: inner, tracer: tracer, meter: meter}
}

// Resolve delegates to the wrapped resolver inside a span, recording per-stage
// counters and the overall resolution duration.
func (r *Instrumented) Resolve(ctx context.Context, identifier string) openfoodfacts.Product {
	ctx, span := r.tracer.Start(ctx, "Resolver.Resolve")
	defer span.End()

	resolutionsCounter, _ := r.meter.Int64Counter("resolver_resolutions_total",
		metric.WithDescription("Total number of resolution attempts"))
	notFoundCounter, _ := r.meter.Int64Counter("resolver_not_found_total",
		metric.WithDescription("Total number of resolutions that yielded no product"))
	durationHist, _ := r.meter.Float64Histogram("resolver_resolution_duration_seconds",
		metric.WithDescription("Duration of identifier resolution in seconds"))

	resolutionsCounter.Add(ctx, 1)
	span.SetAttributes(attribute.Bool("resolver.barcode_shaped", isBarcode(identifier)))

	start := time.Now()
	p := r.inner.Resolve(ctx, identifier)
	durationHist.Record(ctx, time.Since(start).Seconds())

	if p == nil {
		notFoundCounter.Add(ctx, 1)
		span.SetAttributes(attribute.Bool("resolver.found", false))
		return nil
	}

	span.SetAttributes(
		attribute.Bool("resolver.found", true),
		attribute.String("resolver.product_code", p.Code()),
	)
	return p
}
