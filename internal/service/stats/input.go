package stats

import "github.com/heartmarshall/vocamemo-backend/internal/domain"

// MonthlyActivityInput selects a calendar month.
type MonthlyActivityInput struct {
	Year  int
	Month int
}

// Validate checks all fields and collects all errors.
func (i *MonthlyActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.Year < 1970 || i.Year > 9999 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 1970 and 9999"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
