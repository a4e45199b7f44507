package reminder

import (
	"context"
	"log/slog"
)

// LogNotifier writes reminders to a structured logger.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs r at info level.
func (n *LogNotifier) Notify(ctx context.Context, r Reminder) error {
	n.log.InfoContext(ctx, r.Message(),
		slog.String("event", "study_reminder"),
		slog.Int("pending", r.Pending),
		slog.Time("at", r.At),
	)
	return nil
}
