// Package connectivity answers "is the remote store reachable right now".
package connectivity

import (
	"context"
	"log/slog"
	"time"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Checker probes the remote store with a bounded ping.
type Checker struct {
	remote  pinger
	timeout time.Duration
	log     *slog.Logger
}

// NewChecker creates a Checker. A non-positive timeout defaults to 3s.
func NewChecker(remote pinger, timeout time.Duration, logger *slog.Logger) *Checker {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Checker{
		remote:  remote,
		timeout: timeout,
		log:     logger.With("component", "connectivity"),
	}
}

// IsOnline reports whether the remote store answered a ping within the timeout.
func (c *Checker) IsOnline(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	if err := c.remote.Ping(ctx); err != nil {
		c.log.DebugContext(ctx, "remote unreachable", slog.String("error", err.Error()))
		return false
	}

	c.log.DebugContext(ctx, "remote reachable", slog.Duration("latency", time.Since(start)))
	return true
}
