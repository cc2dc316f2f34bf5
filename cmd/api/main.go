package main

import (
	"context"
	"log/slog"
	"os"

	"meridian/internal/app/bootstrap"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()
	app, err := bootstrap.BuildAPI(ctx)
	if err != nil {
		logger.Error("api bootstrap failed",
			"event", "bootstrap_api_failed",
			"error", err.Error(),
		)
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	if err := app.Run(ctx); err != nil {
		logger.Error("http server stopped",
			"event", "http_server_stopped",
			"error", err.Error(),
		)
		os.Exit(1)
	}
}
