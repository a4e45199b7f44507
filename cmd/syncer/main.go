// Command syncer is the device agent. It mirrors the user's libraries into
// a local SQLite cache, replays queued offline edits to the remote store and
// emits study reminders.
//
// Exit codes: 0 = success, 1 = error, 2 = bad flags.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"

	"github.com/heartmarshall/vocamemo-backend/internal/app"
	"github.com/heartmarshall/vocamemo-backend/internal/config"
)

func main() {
	userFlag := flag.StringP("user", "u", "", "id of the user whose data is synced (required)")
	once := flag.Bool("once", false, "run a single sync and exit")
	cachePath := flag.String("cache", "", "path to the SQLite cache (overrides CACHE_PATH)")
	noReminder := flag.Bool("no-reminder", false, "disable study reminders")
	configPath := flag.StringP("config", "c", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --user %q: %v\n", *userFlag, err)
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *cachePath != "" {
		cfg.Cache.Path = *cachePath
	}
	if *noReminder {
		cfg.Reminder.Disabled = true
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunSyncer(ctx, cfg, logger, app.SyncOptions{UserID: userID, Once: *once}); err != nil {
		logger.Error("syncer failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
