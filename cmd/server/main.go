// Command server runs the flashcards HTTP API.
//
// Configuration comes from config.yaml (or CONFIG_PATH) with environment
// variable overrides; DATABASE_DSN and AUTH_JWT_SECRET are required.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/flashcards-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
