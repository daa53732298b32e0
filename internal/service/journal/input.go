package journal

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

const (
	maxContentLength = 50000
	maxMediaCount    = 10
)

// CreateEntryInput holds the parameters for creating a journal entry.
type CreateEntryInput struct {
	UserID        uuid.UUID
	Content       string
	Media         []MediaInput
	WalletAddress string
}

// MediaInput describes a single attachment.
type MediaInput struct {
	Kind domain.MediaKind
	URL  string
}

// Validate checks all fields and collects all errors.
func (i *CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len(i.Content) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long (max 50000)"})
	}
	if !common.IsHexAddress(i.WalletAddress) {
		errs = append(errs, domain.FieldError{Field: "wallet_address", Message: "not a valid address"})
	}
	if len(i.Media) > maxMediaCount {
		errs = append(errs, domain.FieldError{Field: "media", Message: "too many (max 10)"})
	}
	for mi, m := range i.Media {
		if !m.Kind.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   "media[" + strconv.Itoa(mi) + "].kind",
				Message: "invalid value",
			})
		}
		if m.URL == "" {
			errs = append(errs, domain.FieldError{
				Field:   "media[" + strconv.Itoa(mi) + "].url",
				Message: "required",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing a user's entries.
type ListInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > 100 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "out of range (0..100)"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
