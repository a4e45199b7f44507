package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
	"github.com/heartmarshall/vocamemo-backend/internal/service/library"
)

type libraryService interface {
	ListLibraries(ctx context.Context) ([]domain.Library, error)
	CreateLibrary(ctx context.Context, input library.CreateLibraryInput) (*domain.Library, error)
	DeleteLibrary(ctx context.Context, libraryID uuid.UUID) error
	ListSections(ctx context.Context, libraryID uuid.UUID) ([]domain.Section, error)
	CreateSection(ctx context.Context, input library.CreateSectionInput) (*domain.Section, error)
	ListItems(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error)
	CreateItem(ctx context.Context, input library.CreateItemInput) (*domain.Item, error)
}

// LibraryHandler serves the library catalog endpoints.
type LibraryHandler struct {
	svc libraryService
	log *slog.Logger
}

// NewLibraryHandler creates a LibraryHandler.
func NewLibraryHandler(svc libraryService, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{svc: svc, log: logger.With("handler", "library")}
}

type libraryResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type sectionResponse struct {
	ID           uuid.UUID `json:"id"`
	LibraryID    uuid.UUID `json:"library_id"`
	Title        string    `json:"title"`
	DisplayOrder int       `json:"display_order"`
}

type itemResponse struct {
	ID           uuid.UUID  `json:"id"`
	LibraryID    uuid.UUID  `json:"library_id"`
	SectionID    *uuid.UUID `json:"section_id,omitempty"`
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	Memo         *string    `json:"memo,omitempty"`
	StudyStatus  string     `json:"study_status"`
	DisplayOrder int        `json:"display_order"`
	SuccessCount int        `json:"success_count"`
	FailCount    int        `json:"fail_count"`
}

type createSectionRequest struct {
	Title string `json:"title"`
}

type createItemRequest struct {
	SectionID *uuid.UUID `json:"section_id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	Memo      *string    `json:"memo"`
}

// List handles GET /api/libraries.
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	libs, err := h.svc.ListLibraries(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]libraryResponse, 0, len(libs))
	for i := range libs {
		out = append(out, toLibraryResponse(&libs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/libraries.
func (h *LibraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input library.CreateLibraryInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lib, err := h.svc.CreateLibrary(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLibraryResponse(lib))
}

// Delete handles DELETE /api/libraries/{id}.
func (h *LibraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteLibrary(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSections handles GET /api/libraries/{id}/sections.
func (h *LibraryHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sections, err := h.svc.ListSections(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]sectionResponse, 0, len(sections))
	for i := range sections {
		out = append(out, toSectionResponse(&sections[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateSection handles POST /api/libraries/{id}/sections.
func (h *LibraryHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createSectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	section, err := h.svc.CreateSection(r.Context(), library.CreateSectionInput{
		LibraryID: id,
		Title:     req.Title,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSectionResponse(section))
}

// ListItems handles GET /api/libraries/{id}/items.
func (h *LibraryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListItems(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]itemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateItem handles POST /api/libraries/{id}/items.
func (h *LibraryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	item, err := h.svc.CreateItem(r.Context(), library.CreateItemInput{
		LibraryID: id,
		SectionID: req.SectionID,
		Question:  req.Question,
		Answer:    req.Answer,
		Memo:      req.Memo,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

func toLibraryResponse(l *domain.Library) libraryResponse {
	return libraryResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toSectionResponse(s *domain.Section) sectionResponse {
	return sectionResponse{
		ID:           s.ID,
		LibraryID:    s.LibraryID,
		Title:        s.Title,
		DisplayOrder: s.DisplayOrder,
	}
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:           it.ID,
		LibraryID:    it.LibraryID,
		SectionID:    it.SectionID,
		Question:     it.Question,
		Answer:       it.Answer,
		Memo:         it.Memo,
		StudyStatus:  it.StudyStatus.String(),
		DisplayOrder: it.DisplayOrder,
		SuccessCount: it.SuccessCount,
		FailCount:    it.FailCount,
	}
}
