package main

import (
	"context"
	"log/slog"
	"os"

	"govolunteer-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, "govolunteer-server")
	if os.IsNotExist(err) {
		slog.WarnContext(ctx, "no telemetry.json5 found, otel export disabled")
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to setup telemetry", "err", err)
		return
	}

	go func() {
		<-ctx.Done()
		tel.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx)
}
