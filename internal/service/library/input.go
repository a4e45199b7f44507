package library

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
	"github.com/heartmarshall/vocamemo-backend/internal/validation"
)

// CreateLibraryInput holds parameters for creating a library.
type CreateLibraryInput struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// Normalize cleans text fields; a blank description becomes nil.
func (i *CreateLibraryInput) Normalize() {
	i.Title = domain.CleanText(i.Title)
	i.Description = trimOptional(i.Description)
}

// Validate checks all fields and collects all errors.
func (i CreateLibraryInput) Validate() error {
	return validation.Struct(i)
}

// CreateSectionInput holds parameters for adding a section to a library.
type CreateSectionInput struct {
	LibraryID uuid.UUID `json:"library_id" validate:"required"`
	Title     string    `json:"title" validate:"required,max=100"`
}

// Normalize cleans text fields.
func (i *CreateSectionInput) Normalize() {
	i.Title = domain.CleanText(i.Title)
}

// Validate checks all fields and collects all errors.
func (i CreateSectionInput) Validate() error {
	return validation.Struct(i)
}

// CreateItemInput holds parameters for adding an item to a library.
type CreateItemInput struct {
	LibraryID uuid.UUID  `json:"library_id" validate:"required"`
	SectionID *uuid.UUID `json:"section_id"`
	Question  string     `json:"question" validate:"required,max=1000"`
	Answer    string     `json:"answer" validate:"required,max=1000"`
	Memo      *string    `json:"memo" validate:"omitempty,max=2000"`
}

// Normalize cleans text fields; a blank memo becomes nil.
func (i *CreateItemInput) Normalize() {
	i.Question = domain.CleanText(i.Question)
	i.Answer = domain.CleanText(i.Answer)
	i.Memo = trimOptional(i.Memo)
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	return validation.Struct(i)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := domain.CleanText(*s)
	if t == "" {
		return nil
	}
	return &t
}
