package telemetry

import (
	"context"
	"errors"
	"os"
	"time"

	"evexml/lib/configutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type connConfig struct {
	GrpcEndpoint string            `json:"grpc_endpoint"`
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

type otlpConfig struct {
	Traces  connConfig `json:"traces"`
	Metrics connConfig `json:"metrics"`
}

type config struct {
	Otlp otlpConfig `json:"otlp"`
}

var tracerProvider *trace.TracerProvider
var meterProvider *metric.MeterProvider

// searches up the filesystem from the cwd to find a file called
// telemetry.json5, once found it is used to set up the otlp exporters
func SetupFromEnv(ctx context.Context, serviceName string) error {
	cfg, err := configutil.ReadRecursively[config]("telemetry.json5")
	if err != nil {
		return err
	}
	return Setup(ctx, serviceName, cfg)
}

func Setup(ctx context.Context, serviceName string, cfg config) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()

	r, err := newResource(serviceName)
	if err != nil {
		return err
	}

	tp, err := newTraceProvider(ctx, r, cfg)
	if err != nil {
		return err
	}
	otel.SetTracerProvider(tp)
	tracerProvider = tp

	mp, err := newMetricProvider(ctx, r, cfg)
	if err != nil {
		return err
	}
	otel.SetMeterProvider(mp)
	meterProvider = mp

	return nil
}

func Shutdown(ctx context.Context) error {
	var errlist []error
	if tracerProvider != nil {
		if err := tracerProvider.Shutdown(ctx); err != nil {
			errlist = append(errlist, err)
		}
	}
	if meterProvider != nil {
		if err := meterProvider.Shutdown(ctx); err != nil {
			errlist = append(errlist, err)
		}
	}
	return errors.Join(errlist...)
}

var setupTestEnvironments = map[string]bool{}

// sets up logging and telemetry in a testing environment, ensuring that
// it isn't set up more than once. tests still run when no
// telemetry.json5 is reachable, they just export nothing.
func SetupForTesting(serviceName string) func() {
	if setupTestEnvironments[serviceName] {
		return func() {}
	}
	setupTestEnvironments[serviceName] = true

	InitSlog(true)
	err := SetupFromEnv(context.Background(), serviceName)
	if errors.Is(err, os.ErrNotExist) {
		return func() {}
	}
	if err != nil {
		panic(err)
	}

	return func() {
		err := Shutdown(context.Background())
		if err != nil {
			panic(err)
		}
	}
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newTraceProvider(ctx context.Context, r *resource.Resource, cfg config) (*trace.TracerProvider, error) {
	exporter, err := newTraceExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(r),
	), nil
}

func newMetricProvider(ctx context.Context, r *resource.Resource, cfg config) (*metric.MeterProvider, error) {
	exporter, err := newMetricExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(time.Second*5))),
		metric.WithResource(r),
	), nil
}
