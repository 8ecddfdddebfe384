package telemetry

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
)

// grpc endpoints take priority over http ones when both are configured

func newTraceExporter(ctx context.Context, cfg config) (trace.SpanExporter, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if cfg.Otlp.Traces.GrpcEndpoint != "" {
		slog.Info(
			"trace exporter initialized",
			"type", "grpc",
			"endpoint", cfg.Otlp.Traces.GrpcEndpoint,
			"headers", len(cfg.Otlp.Traces.Headers) > 0,
		)
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpointURL(cfg.Otlp.Traces.GrpcEndpoint),
			otlptracegrpc.WithHeaders(cfg.Otlp.Traces.Headers),
		)
	}

	slog.Info(
		"trace exporter initialized",
		"type", "http",
		"endpoint", cfg.Otlp.Traces.HttpEndpoint,
		"headers", len(cfg.Otlp.Traces.Headers) > 0,
	)
	return otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(cfg.Otlp.Traces.HttpEndpoint),
		otlptracehttp.WithHeaders(cfg.Otlp.Traces.Headers),
	)
}

func newMetricExporter(ctx context.Context, cfg config) (metric.Exporter, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if cfg.Otlp.Metrics.GrpcEndpoint != "" {
		slog.Info(
			"metric exporter initialized",
			"type", "grpc",
			"endpoint", cfg.Otlp.Metrics.GrpcEndpoint,
			"headers", len(cfg.Otlp.Metrics.Headers) > 0,
		)
		return otlpmetricgrpc.New(
			ctx,
			otlpmetricgrpc.WithEndpointURL(cfg.Otlp.Metrics.GrpcEndpoint),
			otlpmetricgrpc.WithHeaders(cfg.Otlp.Metrics.Headers),
		)
	}

	slog.Info(
		"metric exporter initialized",
		"type", "http",
		"endpoint", cfg.Otlp.Metrics.HttpEndpoint,
		"headers", len(cfg.Otlp.Metrics.Headers) > 0,
	)
	return otlpmetrichttp.New(
		ctx,
		otlpmetrichttp.WithEndpointURL(cfg.Otlp.Metrics.HttpEndpoint),
		otlpmetrichttp.WithHeaders(cfg.Otlp.Metrics.Headers),
	)
}
