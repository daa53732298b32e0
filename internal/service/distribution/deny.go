package distribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

// Deny marks a pending entry's reward as denied. No transfer is attempted
// and the reward amount is cleared. Denying an already denied entry is an
// idempotent no-op; denying an approved entry is an error.
//
// Deny shares the approval lock so it can never race an in-flight approval
// between its transfer and its settlement write.
func (s *Service) Deny(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}

	s.approveMu.Lock()
	defer s.approveMu.Unlock()

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("load entry: %w", err)
	}

	switch entry.RewardStatus {
	case domain.RewardStatusDenied:
		return entry, nil
	case domain.RewardStatusApproved:
		return nil, domain.ErrAlreadySettled
	}

	if err := s.entries.SettleDenied(ctx, entryID); err != nil {
		// A concurrent deny raced us to the terminal state; treat a
		// now-denied entry as the same no-op.
		if errors.Is(err, domain.ErrAlreadySettled) {
			current, getErr := s.entries.GetByID(ctx, entryID)
			if getErr == nil && current.RewardStatus == domain.RewardStatusDenied {
				return current, nil
			}
		}
		return nil, fmt.Errorf("record denial: %w", err)
	}

	entry.RewardStatus = domain.RewardStatusDenied
	entry.RewardAmount = nil

	s.log.InfoContext(ctx, "reward denied", slog.String("entry_id", entryID.String()))
	return entry, nil
}
