package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/vitahealth/credvault/internal/client/cli"
	"github.com/vitahealth/credvault/internal/client/config"
	"github.com/vitahealth/credvault/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
