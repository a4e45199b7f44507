package domain

import (
	"time"

	"github.com/google/uuid"
)

// Library is a user-owned named collection of study items.
type Library struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Section groups items within a library.
type Section struct {
	ID           uuid.UUID
	LibraryID    uuid.UUID
	Title        string
	DisplayOrder int
	CreatedAt    time.Time
}

// Item is one question/answer flashcard.
type Item struct {
	ID           uuid.UUID
	LibraryID    uuid.UUID
	SectionID    *uuid.UUID
	Question     string
	Answer       string
	Memo         *string
	StudyStatus  StudyStatus
	DisplayOrder int
	SuccessCount int
	FailCount    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
