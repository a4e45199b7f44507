package stats

import (
	"math"
	"time"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// RecentStats is the result of a recent-days query.
type RecentStats struct {
	Days   int
	Logs   []domain.StudyLog
	Totals domain.StudyTotals
}

// Summarize folds study logs into totals. Accuracy is a rounded percentage,
// 0 when no items were studied.
func Summarize(logs []domain.StudyLog) domain.StudyTotals {
	var totals domain.StudyTotals
	seconds := 0
	for _, l := range logs {
		totals.ItemsCount += l.ItemsCount
		totals.CorrectCount += l.CorrectCount
		seconds += l.StudyTimeSeconds
	}
	totals.Days = len(logs)
	if totals.ItemsCount > 0 {
		totals.Accuracy = int(math.Round(100 * float64(totals.CorrectCount) / float64(totals.ItemsCount)))
	}
	totals.TotalMinutes = int(math.Round(float64(seconds) / 60))
	return totals
}

// CalculateStreak counts consecutive calendar days with a log.
// dates must be ordered most recent first. A latest date more than one day
// before today breaks the streak.
func CalculateStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	sameDay := func(a, b time.Time) bool {
		return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
	}

	yesterday := today.AddDate(0, 0, -1)
	latest := dates[0]
	if !sameDay(latest, today) && !sameDay(latest, yesterday) {
		return 0
	}

	expected := today
	if !sameDay(latest, today) {
		expected = yesterday
	}

	streak := 0
	for _, d := range dates {
		if sameDay(d, expected) {
			streak++
			expected = expected.AddDate(0, 0, -1)
			continue
		}
		// duplicate rows for an already counted day
		if sameDay(d, expected.AddDate(0, 0, 1)) {
			continue
		}
		break
	}
	return streak
}
