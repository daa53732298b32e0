package pattern

import (
	"github.com/journalmind/journalmind-backend/internal/domain"
)

const maxObservationLength = 10000

// RecordInput holds the parameters for recording a new pattern.
type RecordInput struct {
	Observation string
	Context     string
}

// Validate checks all fields and collects all errors.
func (i *RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.Observation == "" {
		errs = append(errs, domain.FieldError{Field: "observation", Message: "required"})
	} else if len(i.Observation) > maxObservationLength {
		errs = append(errs, domain.FieldError{Field: "observation", Message: "too long (max 10000)"})
	}
	if len(i.Context) > maxObservationLength {
		errs = append(errs, domain.FieldError{Field: "context", Message: "too long (max 10000)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FindSimilarInput holds the parameters for a similarity query.
type FindSimilarInput struct {
	Observation string
	MaxItems    int
}

// Validate checks all fields and collects all errors.
func (i *FindSimilarInput) Validate() error {
	var errs []domain.FieldError

	if i.Observation == "" {
		errs = append(errs, domain.FieldError{Field: "observation", Message: "required"})
	} else if len(i.Observation) > maxObservationLength {
		errs = append(errs, domain.FieldError{Field: "observation", Message: "too long (max 10000)"})
	}
	if i.MaxItems <= 0 {
		errs = append(errs, domain.FieldError{Field: "max_items", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
