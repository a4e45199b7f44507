package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/service/study"
)

type studyService interface {
	StartSession(ctx context.Context, input study.StartSessionInput) (*study.Session, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*study.Session, error)
	Flip(ctx context.Context, sessionID uuid.UUID) (*study.Session, error)
	RecordOutcome(ctx context.Context, input study.RecordOutcomeInput) (*study.Session, error)
	Discard(ctx context.Context, sessionID uuid.UUID) error
}

// StudyHandler serves the flip-card session endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type startSessionRequest struct {
	LibraryID uuid.UUID `json:"library_id"`
}

type recordOutcomeRequest struct {
	Success *bool `json:"success"`
}

type sessionResponse struct {
	ID         uuid.UUID     `json:"id"`
	LibraryID  uuid.UUID     `json:"library_id"`
	State      string        `json:"state"`
	Total      int           `json:"total"`
	Cursor     int           `json:"cursor"`
	Position   int           `json:"position"`
	Progress   float64       `json:"progress"`
	Flipped    bool          `json:"flipped"`
	Current    *cardResponse `json:"current,omitempty"`
	Results    study.Results `json:"results"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt *time.Time    `json:"finished_at,omitempty"`
	Error      string        `json:"error,omitempty"`
}

// cardResponse hides the answer until the card is flipped.
type cardResponse struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   *string   `json:"answer,omitempty"`
	Memo     *string   `json:"memo,omitempty"`
	Status   string    `json:"study_status"`
}

// Start handles POST /api/study/sessions.
func (h *StudyHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sess, err := h.svc.StartSession(r.Context(), study.StartSessionInput{LibraryID: req.LibraryID})
	if err != nil && sess != nil {
		// Loading failed after the session was registered: hand it back so
		// the client can inspect or discard it.
		writeJSON(w, http.StatusServiceUnavailable, toSessionResponse(sess.Snapshot()))
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(sess.Snapshot()))
}

// Get handles GET /api/study/sessions/{id}.
func (h *StudyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sess, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess.Snapshot()))
}

// Flip handles POST /api/study/sessions/{id}/flip.
func (h *StudyHandler) Flip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sess, err := h.svc.Flip(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess.Snapshot()))
}

// Outcome handles POST /api/study/sessions/{id}/outcome.
func (h *StudyHandler) Outcome(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req recordOutcomeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Success == nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "validation: success: required")
		return
	}

	sess, err := h.svc.RecordOutcome(r.Context(), study.RecordOutcomeInput{
		SessionID: id,
		Success:   *req.Success,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess.Snapshot()))
}

// Discard handles DELETE /api/study/sessions/{id}.
func (h *StudyHandler) Discard(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Discard(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toSessionResponse(snap study.Snapshot) sessionResponse {
	resp := sessionResponse{
		ID:         snap.ID,
		LibraryID:  snap.LibraryID,
		State:      string(snap.State),
		Total:      snap.Total,
		Cursor:     snap.Cursor,
		Position:   snap.Position,
		Progress:   snap.Progress,
		Flipped:    snap.Flipped,
		Results:    snap.Results,
		StartedAt:  snap.StartedAt,
		FinishedAt: snap.FinishedAt,
	}
	// the cause is logged by the service; clients only learn what failed
	if snap.Err != nil {
		resp.Error = "items could not be loaded"
		if snap.State == study.StateFinished {
			resp.Error = "study log could not be saved"
		}
	}
	if snap.Current != nil {
		card := &cardResponse{
			ID:       snap.Current.ID,
			Question: snap.Current.Question,
			Status:   snap.Current.StudyStatus.String(),
		}
		if snap.Flipped {
			card.Answer = &snap.Current.Answer
			card.Memo = snap.Current.Memo
		}
		resp.Current = card
	}
	return resp
}
