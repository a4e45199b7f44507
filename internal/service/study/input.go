package study

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// StartSessionInput holds the parameters for starting a study session.
type StartSessionInput struct {
	LibraryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.LibraryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "library_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordOutcomeInput holds the learner's answer for the current card.
type RecordOutcomeInput struct {
	SessionID uuid.UUID
	Success   bool
}

// Validate checks all fields and collects all errors.
func (i *RecordOutcomeInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
