// Command migrate applies the remote store schema migrations.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	flag "github.com/spf13/pflag"

	"github.com/heartmarshall/vocamemo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocamemo-backend/internal/app"
	"github.com/heartmarshall/vocamemo-backend/internal/config"
)

func main() {
	status := flag.Bool("status", false, "print migration status instead of migrating")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	configPath := flag.StringP("config", "c", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *status {
		if err := printStatus(ctx, cfg.Database.DSN, logger); err != nil {
			logger.Error("migration status", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	results, err := postgres.Migrate(ctx, cfg.Database.DSN)
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	if err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations complete", slog.Int("applied", len(results)))
}

func printStatus(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}
	for _, st := range statuses {
		logger.Info("migration",
			slog.Int64("version", st.Source.Version),
			slog.String("file", st.Source.Path),
			slog.String("state", string(st.State)),
		)
	}
	return nil
}
