// Command server runs the journaling backend HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) with
// environment variable overrides.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/journalmind/journalmind-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
