package distribution

import (
	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

// ApproveInput holds the parameters for approving an entry's reward.
// Amount is the admin-supplied payout; it may differ from the computed
// reward.
type ApproveInput struct {
	EntryID uuid.UUID
	Amount  *domain.TokenAmount
}

// Validate checks all fields and collects all errors.
func (i *ApproveInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
