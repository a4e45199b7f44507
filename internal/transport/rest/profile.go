package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
	"github.com/heartmarshall/vocamemo-backend/internal/service/user"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
	UpdateNickname(ctx context.Context, input user.UpdateNicknameInput) (*domain.Profile, error)
}

// ProfileHandler serves the profile endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Nickname  string    `json:"nickname"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// UpdateNickname handles PATCH /api/profile/nickname.
func (h *ProfileHandler) UpdateNickname(w http.ResponseWriter, r *http.Request) {
	var input user.UpdateNicknameInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpdateNickname(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		UserID:    p.UserID,
		Nickname:  p.Nickname,
		UpdatedAt: p.UpdatedAt,
	}
}
