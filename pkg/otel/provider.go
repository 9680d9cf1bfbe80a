package otel

import (
	"os"
)

const instrumentationName = "github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}
