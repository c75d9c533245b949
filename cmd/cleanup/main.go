// Command cleanup enforces the conversation retention policy: conversations
// idle past the retention window are soft-deleted, and conversations that
// have been soft-deleted past the purge window are physically removed. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/adapter/postgres"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/adapter/postgres/conversation"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/app"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := conversation.New(pool)

	staleThreshold := time.Now().AddDate(0, 0, -cfg.Chat.RetentionDays)
	softDeleted, err := repo.SoftDeleteStale(ctx, staleThreshold)
	if err != nil {
		logger.Error("soft delete failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", staleThreshold),
		)
		os.Exit(1)
	}

	purgeThreshold := time.Now().AddDate(0, 0, -cfg.Chat.PurgeAfterDays)
	purged, err := repo.PurgeDeleted(ctx, purgeThreshold)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", purgeThreshold),
		)
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int64("soft_deleted", softDeleted),
		slog.Int64("purged", purged),
		slog.Time("stale_threshold", staleThreshold),
		slog.Time("purge_threshold", purgeThreshold),
	)
}
