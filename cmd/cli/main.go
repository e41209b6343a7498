package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/konkrer/hack-or-snooze/internal/cli"
	"github.com/konkrer/hack-or-snooze/internal/config"
	"github.com/konkrer/hack-or-snooze/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := logging.NewDefault(level)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}
	defer app.Close(ctx)

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
