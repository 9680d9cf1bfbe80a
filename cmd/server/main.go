package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/config"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/otel"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/server"
)

var version string

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration path")

	flag.Parse()

	ctx := context.Background()

	if err := otel.Setup(ctx, "mortgage-approval", version); err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to parse configuration", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	slog.Info("server starting", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
