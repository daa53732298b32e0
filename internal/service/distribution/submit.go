package distribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

// SubmitResult reports the outcome of submitting an entry for settlement.
// A nil RewardAmount means the entry earned nothing; that is an automatic,
// informational outcome distinct from an administrative denial.
type SubmitResult struct {
	EntryID      uuid.UUID
	RewardAmount *domain.TokenAmount
	Basis        domain.RewardBasis
}

// Earned reports whether the entry earned a reward awaiting approval.
func (r *SubmitResult) Earned() bool { return r.RewardAmount != nil }

// SubmitForSettlement computes the reward for a freshly recorded entry.
// A zero computation leaves the entry pending with no amount and stops;
// such entries never advance to an approved or denied state. A positive
// computation is persisted and awaits admin approval.
func (s *Service) SubmitForSettlement(ctx context.Context, entryID uuid.UUID) (*SubmitResult, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("load entry: %w", err)
	}

	previous, err := s.entries.GetPrevious(ctx, entry.UserID, entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("load previous entry: %w", err)
	}

	comp := s.calc.Compute(entry, previous)
	if !comp.Eligible() {
		s.log.InfoContext(ctx, "entry earned no reward",
			slog.String("entry_id", entryID.String()),
			slog.Int("content_length", len(entry.Content)),
		)
		return &SubmitResult{EntryID: entryID, Basis: comp.Basis}, nil
	}

	if err := s.entries.SetRewardAmount(ctx, entryID, comp.Amount); err != nil {
		return nil, fmt.Errorf("persist computed reward: %w", err)
	}

	s.log.InfoContext(ctx, "entry submitted for settlement",
		slog.String("entry_id", entryID.String()),
		slog.String("amount", comp.Amount.String()),
	)
	return &SubmitResult{EntryID: entryID, RewardAmount: comp.Amount, Basis: comp.Basis}, nil
}
