// Package journal provides the entry lifecycle feeding the reward and
// pattern subsystems: creating entries, reading them back, and kicking off
// settlement.
package journal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
	"github.com/journalmind/journalmind-backend/internal/service/distribution"
	"github.com/journalmind/journalmind-backend/internal/service/pattern"
)

type entryRepo interface {
	Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error)
	GetByID(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, int, error)
}

type settlementSubmitter interface {
	SubmitForSettlement(ctx context.Context, entryID uuid.UUID) (*distribution.SubmitResult, error)
}

type patternRecorder interface {
	Record(ctx context.Context, input pattern.RecordInput) (*domain.Pattern, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service wraps entry persistence with settlement submission and pattern
// recording.
type Service struct {
	log        *slog.Logger
	entries    entryRepo
	settlement settlementSubmitter
	patterns   patternRecorder
	tx         txManager
}

// NewService creates a new journal service.
func NewService(log *slog.Logger, entries entryRepo, settlement settlementSubmitter, patterns patternRecorder, tx txManager) *Service {
	return &Service{
		log:        log.With("service", "journal"),
		entries:    entries,
		settlement: settlement,
		patterns:   patterns,
		tx:         tx,
	}
}

// GetEntry returns a single entry by id.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}
	return s.entries.GetByID(ctx, entryID)
}

// ListEntries returns a user's entries newest first with the total count.
func (s *Service) ListEntries(ctx context.Context, input ListInput) ([]*domain.JournalEntry, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	return s.entries.List(ctx, input.UserID, limit, input.Offset)
}
