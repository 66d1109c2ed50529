// Command cleanup removes activity log rows that fell out of their owner's
// retention window. The server already trims a user's log when it writes to
// it; this sweep covers users who have gone quiet. It is intended to be
// invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Timurc390/Boardly/internal/adapter/postgres"
	"github.com/Timurc390/Boardly/internal/adapter/postgres/activity"
	"github.com/Timurc390/Boardly/internal/app"
	"github.com/Timurc390/Boardly/internal/config"
)

func main() {
	cfg, err := config.LoadTool()
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

	now := time.Now().UTC()

	deleted, err := activity.New(pool).DeleteExpired(ctx, now)
	if err != nil {
		logger.Error("activity sweep failed",
			slog.String("error", err.Error()),
			slog.Time("now", now),
		)
		os.Exit(1)
	}

	logger.Info("activity sweep completed",
		slog.Int64("deleted", deleted),
		slog.Time("now", now),
	)
}
