package otel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOTLPProtocol(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		require.Equal(t, "", otlpProtocol("LOGS"))
	})

	t.Run("generic", func(t *testing.T) {
		t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")

		require.Equal(t, "grpc", otlpProtocol("LOGS"))
		require.Equal(t, "grpc", otlpProtocol("METRICS"))
		require.Equal(t, "grpc", otlpProtocol("TRACES"))
	})

	t.Run("signal overrides generic", func(t *testing.T) {
		t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "http/protobuf")
		t.Setenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "gRPC")

		require.Equal(t, "grpc", otlpProtocol("TRACES"))
		require.Equal(t, "http/protobuf", otlpProtocol("LOGS"))
	})
}
