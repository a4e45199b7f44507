package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sync queue payloads are JSON. Domain types carry no json tags, so the
// wire shape lives here next to the codec.

type libraryPayload struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type itemPayload struct {
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
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// MarshalLibraryPayload encodes a library for the sync queue.
func MarshalLibraryPayload(l Library) ([]byte, error) {
	return json.Marshal(libraryPayload{
		ID:          l.ID,
		UserID:      l.UserID,
		Title:       l.Title,
		Description: l.Description,
		CreatedAt:   formatTime(l.CreatedAt),
		UpdatedAt:   formatTime(l.UpdatedAt),
	})
}

// UnmarshalLibraryPayload decodes a library queued by MarshalLibraryPayload.
func UnmarshalLibraryPayload(data []byte) (Library, error) {
	var p libraryPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return Library{}, fmt.Errorf("unmarshal library payload: %w", err)
	}

	created, err := parseTime(p.CreatedAt)
	if err != nil {
		return Library{}, fmt.Errorf("library payload created_at: %w", err)
	}
	updated, err := parseTime(p.UpdatedAt)
	if err != nil {
		return Library{}, fmt.Errorf("library payload updated_at: %w", err)
	}

	return Library{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}, nil
}

// MarshalItemPayload encodes an item for the sync queue.
func MarshalItemPayload(it Item) ([]byte, error) {
	return json.Marshal(itemPayload{
		ID:           it.ID,
		LibraryID:    it.LibraryID,
		SectionID:    it.SectionID,
		Question:     it.Question,
		Answer:       it.Answer,
		Memo:         it.Memo,
		StudyStatus:  string(it.StudyStatus),
		DisplayOrder: it.DisplayOrder,
		SuccessCount: it.SuccessCount,
		FailCount:    it.FailCount,
		CreatedAt:    formatTime(it.CreatedAt),
		UpdatedAt:    formatTime(it.UpdatedAt),
	})
}

// UnmarshalItemPayload decodes an item queued by MarshalItemPayload.
func UnmarshalItemPayload(data []byte) (Item, error) {
	var p itemPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return Item{}, fmt.Errorf("unmarshal item payload: %w", err)
	}

	created, err := parseTime(p.CreatedAt)
	if err != nil {
		return Item{}, fmt.Errorf("item payload created_at: %w", err)
	}
	updated, err := parseTime(p.UpdatedAt)
	if err != nil {
		return Item{}, fmt.Errorf("item payload updated_at: %w", err)
	}

	return Item{
		ID:           p.ID,
		LibraryID:    p.LibraryID,
		SectionID:    p.SectionID,
		Question:     p.Question,
		Answer:       p.Answer,
		Memo:         p.Memo,
		StudyStatus:  ParseStudyStatus(p.StudyStatus),
		DisplayOrder: p.DisplayOrder,
		SuccessCount: p.SuccessCount,
		FailCount:    p.FailCount,
		CreatedAt:    created,
		UpdatedAt:    updated,
	}, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
