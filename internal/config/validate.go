package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if err := c.Sync.validate(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	if !c.Reminder.Disabled && c.Reminder.Interval <= 0 {
		return fmt.Errorf("reminder: interval must be > 0 when enabled (got %v)", c.Reminder.Interval)
	}

	return nil
}

// ValidateServer adds the checks only the HTTP API needs on top of Validate.
func (c *Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	return nil
}

func (s *StudyConfig) validate() error {
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	if s.RecentDays <= 0 {
		return fmt.Errorf("recent_days must be > 0 (got %d)", s.RecentDays)
	}
	if s.RecentDays > 366 {
		return fmt.Errorf("recent_days must be <= 366 (got %d)", s.RecentDays)
	}
	if s.MaxSessionItems <= 0 {
		return fmt.Errorf("max_session_items must be > 0 (got %d)", s.MaxSessionItems)
	}
	if s.StatusWriteTimeout <= 0 {
		return fmt.Errorf("status_write_timeout must be > 0 (got %v)", s.StatusWriteTimeout)
	}
	return nil
}

func (s *SyncConfig) validate() error {
	if s.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %v)", s.Interval)
	}
	if s.ProbeTimeout <= 0 {
		return fmt.Errorf("probe_timeout must be > 0 (got %v)", s.ProbeTimeout)
	}
	return nil
}
