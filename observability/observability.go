// Package observability provides the OpenTelemetry tracing surface of this
// module. The ephemeris Handle queries and the chart, divisional, aspects,
// ashtakavarga, shadbala and panchanga entry points open a span through it
// and record a returned error on that span; the dasha, kp, jaimini, muhurta
// and transit packages open no spans.
package observability

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var resource *sdkresource.Resource
var initResourcesOnce sync.Once
var initObserverOnce sync.Once

// Wrappers for the OpenTelemetry trace package, kept at package level so
// call sites never need their own otel import just to build attributes.
var WithAttributes = trace.WithAttributes
var SpanFromContext = trace.SpanFromContext

// ObserverInterface is the tracing surface every calculation service
// depends on. Production code reaches it through Observer(); tests can
// substitute NewLocalObserver() for a collector-free stdout exporter.
type ObserverInterface interface {
	Shutdown(ctx context.Context) error
	Tracer(name string) trace.Tracer
	CreateSpan(ctx context.Context, name string) (context.Context, trace.Span)
}

type observer struct {
	tp *sdktrace.TracerProvider
}

var oi *observer

// NewLocalObserver initializes a stdout-exporting observer, useful for
// tests and for running the module without a collector.
func NewLocalObserver() ObserverInterface {
	initObserverOnce.Do(func() {
		tp, _ := initStdoutProvider()
		oi = &observer{tp: tp}
	})
	return oi
}

// NewObserver initializes an observer exporting OTLP/gRPC spans to address.
// Passing an empty address falls back to the stdout exporter.
func NewObserver(address string) (ObserverInterface, error) {
	var tp *sdktrace.TracerProvider
	var err error
	initObserverOnce.Do(func() {
		if address == "" {
			tp, err = initStdoutProvider()
		} else {
			tp, err = initTracerProvider(address)
		}
		oi = &observer{tp: tp}
	})
	return oi, err
}

// Observer returns the process-wide observer, auto-initializing a local
// stdout observer the first time it is called with no prior NewObserver.
func Observer() ObserverInterface {
	if oi == nil {
		return NewLocalObserver()
	}
	return oi
}

// Shutdown stops the observer's tracer provider, flushing buffered spans.
func (o *observer) Shutdown(ctx context.Context) error {
	return o.tp.Shutdown(ctx)
}

// Tracer returns a named tracer from the observer's provider.
func (o *observer) Tracer(name string) trace.Tracer {
	return o.tp.Tracer(name)
}

// CreateSpan starts a span named `name` as a child of any span already in ctx.
func (o *observer) CreateSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	tracer := o.tp.Tracer("jyotish")
	return tracer.Start(ctx, name)
}

func initResource() *sdkresource.Resource {
	initResourcesOnce.Do(func() {
		extraResources, _ := sdkresource.New(
			context.Background(),
			sdkresource.WithOS(),
			sdkresource.WithProcess(),
			sdkresource.WithHost(),
			sdkresource.WithAttributes(
				attribute.String("application", "jyotish"),
				attribute.String("service.name", "jyotish-core"),
				attribute.String("service.namespace", "observability"),
				attribute.String("application.version", "0.1.0"),
			),
		)
		resource, _ = sdkresource.Merge(
			sdkresource.Default(),
			extraResources,
		)
	})
	return resource
}

func initStdoutProvider() (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stdouttrace export pipeline: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(initResource()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}

// initTracerProvider dials an OTLP/gRPC collector at address. This and
// InitMeterProvider's OTLP/gRPC metric exporter are the module's gRPC
// clients; both talk to an external collector and have nothing to do with
// serving RPCs.
func initTracerProvider(address string) (*sdktrace.TracerProvider, error) {
	if address == "" {
		return nil, fmt.Errorf("collector address is required")
	}

	exporter, err := otlptracegrpc.New(
		context.Background(),
		otlptracegrpc.WithEndpoint(address),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(initResource()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}

// InitMeterProvider wires an OTLP/gRPC metrics pipeline and installs it as
// the global meter provider. No other package in this module calls it.
func InitMeterProvider() (*sdkmetric.MeterProvider, error) {
	ctx := context.Background()

	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("new otlp metric grpc exporter failed: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(initResource()),
	)
	otel.SetMeterProvider(mp)

	return mp, nil
}
