// Package distribution implements the reward settlement flow: computing an
// entry's reward on submission, the admin approve/deny gate, and the
// cap-bounded on-chain payout.
package distribution

import (
	"context"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/adapter/chain"
	"github.com/journalmind/journalmind-backend/internal/config"
	"github.com/journalmind/journalmind-backend/internal/domain"
	"github.com/journalmind/journalmind-backend/internal/service/reward"
)

type entryRepo interface {
	GetByID(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	GetPrevious(ctx context.Context, userID uuid.UUID, before time.Time) (*domain.JournalEntry, error)
	SetRewardAmount(ctx context.Context, entryID uuid.UUID, amount *domain.TokenAmount) error
	SettleApproved(ctx context.Context, entryID uuid.UUID, amount *domain.TokenAmount, distributedAt time.Time) error
	SettleDenied(ctx context.Context, entryID uuid.UUID) error
}

type tokenClient interface {
	DistributorBalance(ctx context.Context) (*big.Int, error)
	TotalSupply(ctx context.Context) (*big.Int, error)
	Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error)
	DistributionHistory(ctx context.Context) (*chain.DistributionHistory, error)
}

// Service coordinates reward settlement. Approvals are serialized through a
// mutex so two concurrent approvals cannot both pass the cap check against
// stale totals.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	token   tokenClient
	calc    *reward.Calculator
	cfg     config.DistributionConfig

	// approveMu serializes settlement: all of Approve from the status read
	// through the settlement commit, and Deny's status read and write.
	approveMu sync.Mutex
}

// NewService creates a new distribution service.
func NewService(log *slog.Logger, entries entryRepo, token tokenClient, calc *reward.Calculator, cfg config.DistributionConfig) *Service {
	return &Service{
		log:     log.With("service", "distribution"),
		entries: entries,
		token:   token,
		calc:    calc,
		cfg:     cfg,
	}
}

// maxDistributable returns the cap in base units: totalSupply × capBps / 10000.
func (s *Service) maxDistributable(totalSupply *big.Int) *big.Int {
	limit := new(big.Int).Mul(totalSupply, big.NewInt(s.cfg.CapBasisPoints))
	return limit.Div(limit, big.NewInt(10000))
}
