// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// The database is taken from the regular configuration (CONFIG_PATH or
// DATABASE_DSN). The default command is up.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Timurc390/Boardly/internal/adapter/postgres"
	"github.com/Timurc390/Boardly/internal/app"
	"github.com/Timurc390/Boardly/internal/config"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, command, cfg.Database.DSN, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, command, dsn string, logger *slog.Logger) error {
	if command == "up" {
		return postgres.Migrate(ctx, dsn, logger)
	}

	provider, db, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "down":
		res, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logger.Info("migration rolled back", slog.Int64("version", res.Source.Version))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			fmt.Printf("%-6d %-10s %s\n", s.Source.Version, s.State, s.AppliedAt.Format(time.RFC3339))
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
	return nil
}
