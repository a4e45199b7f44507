package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
	"github.com/heartmarshall/vocamemo-backend/internal/service/stats"
)

type statsService interface {
	RecentStats(ctx context.Context, days int) (stats.RecentStats, error)
	Streak(ctx context.Context) (int, error)
	Distribution(ctx context.Context, libraryID *uuid.UUID) (domain.StatusDistribution, error)
	MonthlyActivity(ctx context.Context, input stats.MonthlyActivityInput) ([]string, error)
	Overview(ctx context.Context) (domain.StudyOverview, error)
}

// StatsHandler serves the read-only statistics endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type studyLogResponse struct {
	Date             string `json:"date"`
	ItemsCount       int    `json:"items_count"`
	CorrectCount     int    `json:"correct_count"`
	StudyTimeSeconds int    `json:"study_time_seconds"`
}

type totalsResponse struct {
	Days         int `json:"days"`
	ItemsCount   int `json:"items_count"`
	CorrectCount int `json:"correct_count"`
	Accuracy     int `json:"accuracy"`
	TotalMinutes int `json:"total_minutes"`
}

type recentResponse struct {
	Days   int                `json:"days"`
	Logs   []studyLogResponse `json:"logs"`
	Totals totalsResponse     `json:"totals"`
}

type distributionResponse struct {
	Learned   int `json:"learned"`
	Confused  int `json:"confused"`
	Undecided int `json:"undecided"`
	Total     int `json:"total"`
}

type overviewResponse struct {
	Recent       []studyLogResponse   `json:"recent"`
	Totals       totalsResponse       `json:"totals"`
	Streak       int                  `json:"streak"`
	Distribution distributionResponse `json:"distribution"`
}

// Recent handles GET /api/stats/recent?days=N.
func (h *StatsHandler) Recent(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recent, err := h.svc.RecentStats(r.Context(), days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recentResponse{
		Days:   recent.Days,
		Logs:   toStudyLogResponses(recent.Logs),
		Totals: toTotalsResponse(recent.Totals),
	})
}

// Streak handles GET /api/stats/streak.
func (h *StatsHandler) Streak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.svc.Streak(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"streak": streak})
}

// Distribution handles GET /api/stats/distribution?library_id=.
func (h *StatsHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	var libraryID *uuid.UUID
	if raw := r.URL.Query().Get("library_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("library_id", "must be a UUID"))
			return
		}
		libraryID = &id
	}

	dist, err := h.svc.Distribution(r.Context(), libraryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDistributionResponse(dist))
}

// Activity handles GET /api/stats/activity?year=&month=.
func (h *StatsHandler) Activity(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	month, err := queryInt(r, "month", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dates, err := h.svc.MonthlyActivity(r.Context(), stats.MonthlyActivityInput{Year: year, Month: month})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"dates": dates})
}

// Overview handles GET /api/stats/overview.
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overviewResponse{
		Recent:       toStudyLogResponses(ov.Recent),
		Totals:       toTotalsResponse(ov.Totals),
		Streak:       ov.Streak,
		Distribution: toDistributionResponse(ov.Distribution),
	})
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func toStudyLogResponses(logs []domain.StudyLog) []studyLogResponse {
	out := make([]studyLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, studyLogResponse{
			Date:             l.StudyDate.Format("2006-01-02"),
			ItemsCount:       l.ItemsCount,
			CorrectCount:     l.CorrectCount,
			StudyTimeSeconds: l.StudyTimeSeconds,
		})
	}
	return out
}

func toTotalsResponse(t domain.StudyTotals) totalsResponse {
	return totalsResponse{
		Days:         t.Days,
		ItemsCount:   t.ItemsCount,
		CorrectCount: t.CorrectCount,
		Accuracy:     t.Accuracy,
		TotalMinutes: t.TotalMinutes,
	}
}

func toDistributionResponse(d domain.StatusDistribution) distributionResponse {
	return distributionResponse{
		Learned:   d.Learned,
		Confused:  d.Confused,
		Undecided: d.Undecided,
		Total:     d.Total(),
	}
}
