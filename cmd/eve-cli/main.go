package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"evexml/cmd/eve-cli/commands"
	"evexml/lib/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	telemetry.InitSlog(false)
	err := telemetry.SetupFromEnv(ctx, "eve-cli")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(err)
	}
	defer telemetry.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
