package domain

import (
	"time"

	"github.com/google/uuid"
)

// StudyLog aggregates one user's study activity for one calendar day.
type StudyLog struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	StudyDate        time.Time
	ItemsCount       int
	CorrectCount     int
	StudyTimeSeconds int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StudyLogDelta is the amount a finished session adds to the day's log.
type StudyLogDelta struct {
	UserID           uuid.UUID
	StudyDate        time.Time
	ItemsCount       int
	CorrectCount     int
	StudyTimeSeconds int
}

// StudyTotals summarizes a window of study logs.
type StudyTotals struct {
	Days         int
	ItemsCount   int
	CorrectCount int
	Accuracy     int // percent, rounded
	TotalMinutes int
}

// StatusDistribution counts items per study status.
type StatusDistribution struct {
	Learned   int
	Confused  int
	Undecided int
}

// Total returns the number of items the distribution covers.
func (d StatusDistribution) Total() int {
	return d.Learned + d.Confused + d.Undecided
}

// Add folds n items with the given raw status into the distribution.
func (d *StatusDistribution) Add(status string, n int) {
	switch ParseStudyStatus(status) {
	case StudyStatusLearned:
		d.Learned += n
	case StudyStatusConfused:
		d.Confused += n
	default:
		d.Undecided += n
	}
}

// StatusCount is one row of a grouped status count query.
type StatusCount struct {
	Status string
	Count  int
}

// StudyOverview bundles the dashboard statistics.
type StudyOverview struct {
	Recent       []StudyLog
	Totals       StudyTotals
	Streak       int
	Distribution StatusDistribution
}
