package otel

import (
	"context"
	"os"
	"strings"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"

	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func Setup(ctx context.Context, name, version string) error {
	if !EnableTelemetry {
		return nil
	}

	resource := sdkresource.NewWithAttributes(
		semconv.SchemaURL,

		semconv.ServiceName(name),
		semconv.ServiceVersion(version),
	)

	if err := setupLogger(ctx, resource); err != nil {
		return err
	}

	if err := setupMeter(ctx, resource); err != nil {
		return err
	}

	if err := setupTracer(ctx, resource); err != nil {
		return err
	}

	return nil
}

// otlpProtocol resolves the exporter protocol for one signal. The
// signal-specific variable wins over the generic one; anything other than
// "grpc" falls back to http/protobuf.
func otlpProtocol(signal string) string {
	val := os.Getenv("OTEL_EXPORTER_OTLP_" + signal + "_PROTOCOL")

	if val == "" {
		val = os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL")
	}

	return strings.ToLower(val)
}
