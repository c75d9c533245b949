// Command server runs the conversational task-management HTTP server.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
