package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/journalmind/journalmind-backend/internal/domain"
	"github.com/journalmind/journalmind-backend/internal/service/distribution"
	"github.com/journalmind/journalmind-backend/internal/service/pattern"
)

// CreateEntryResult is the outcome of recording an entry: the stored entry
// plus what it earned. Settlement is nil only if submission itself failed.
type CreateEntryResult struct {
	Entry      *domain.JournalEntry
	Settlement *distribution.SubmitResult
}

// CreateEntry persists the entry and submits it for reward settlement in one
// transaction, so a failed submission leaves no orphaned entry behind. The
// entry's observation is then recorded as a learning pattern; that step is
// best effort because it calls the embedding provider, and a provider outage
// must not lose the user's entry.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*CreateEntryResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	media := make([]domain.MediaAttachment, 0, len(input.Media))
	for _, m := range input.Media {
		media = append(media, domain.MediaAttachment{Kind: m.Kind, URL: m.URL})
	}

	var (
		created *domain.JournalEntry
		submit  *distribution.SubmitResult
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.entries.Create(txCtx, &domain.JournalEntry{
			UserID:        input.UserID,
			Content:       input.Content,
			Media:         media,
			WalletAddress: input.WalletAddress,
			RewardStatus:  domain.RewardStatusPending,
		})
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		submit, err = s.settlement.SubmitForSettlement(txCtx, created.ID)
		if err != nil {
			return fmt.Errorf("submit for settlement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if submit.Earned() {
		created.RewardAmount = submit.RewardAmount
	}

	if _, err := s.patterns.Record(ctx, pattern.RecordInput{Observation: input.Content}); err != nil {
		s.log.WarnContext(ctx, "pattern recording skipped",
			slog.String("entry_id", created.ID.String()),
			slog.Any("error", err),
		)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", created.ID.String()),
		slog.Bool("earned", submit.Earned()),
	)
	return &CreateEntryResult{Entry: created, Settlement: submit}, nil
}
