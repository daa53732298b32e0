package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Sentinel errors for the pattern-matching and reward-distribution core.
var (
	// ErrEmbeddingFailed is returned when the embedding provider yields no
	// vectors for the requested texts.
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrInvalidRewardAmount is returned when an approval carries a zero or
	// negative token amount.
	ErrInvalidRewardAmount = errors.New("invalid reward amount")

	// ErrInsufficientDistributorBalance is returned when the distributor
	// wallet does not hold enough tokens to cover an approval.
	ErrInsufficientDistributorBalance = errors.New("insufficient distributor balance")

	// ErrCapExceeded is returned when an approval would push the cumulative
	// distributed total past the distribution cap.
	ErrCapExceeded = errors.New("distribution cap exceeded")

	// ErrAlreadySettled is returned when an entry's reward has already
	// reached a terminal approved/denied state.
	ErrAlreadySettled = errors.New("reward already settled")

	// ErrNotRewardEligible is returned when an entry whose computed reward
	// was zero is submitted for approval. Such entries never settle.
	ErrNotRewardEligible = errors.New("entry is not reward eligible")

	// ErrTransferFailed is returned when the on-chain token transfer fails
	// or the transaction is mined with a failed status. The entry stays
	// pending; retrying is the caller's decision.
	ErrTransferFailed = errors.New("token transfer failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
