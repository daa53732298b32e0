package distribution

import (
	"context"
	"fmt"
	"math/big"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

// Stats is a snapshot of the distribution ledger, recomputed from chain
// state on every call.
type Stats struct {
	TotalSupply        *domain.TokenAmount
	TotalDistributed   *domain.TokenAmount
	MaxDistributable   *domain.TokenAmount
	DistributorBalance *domain.TokenAmount
	RemainingUnderCap  *domain.TokenAmount
	UniqueRecipients   int
	CapBasisPoints     int64
}

// GetStats reads the distributor balance, total supply and transfer history
// and derives the ledger snapshot.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	balance, err := s.token.DistributorBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("read distributor balance: %w", err)
	}
	supply, err := s.token.TotalSupply(ctx)
	if err != nil {
		return nil, fmt.Errorf("read total supply: %w", err)
	}
	history, err := s.token.DistributionHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("read distribution history: %w", err)
	}

	maxDist := s.maxDistributable(supply)
	remaining := new(big.Int).Sub(maxDist, history.TotalDistributed)
	if remaining.Sign() < 0 {
		remaining.SetInt64(0)
	}

	return &Stats{
		TotalSupply:        domain.NewTokenAmount(supply),
		TotalDistributed:   domain.NewTokenAmount(history.TotalDistributed),
		MaxDistributable:   domain.NewTokenAmount(maxDist),
		DistributorBalance: domain.NewTokenAmount(balance),
		RemainingUnderCap:  domain.NewTokenAmount(remaining),
		UniqueRecipients:   history.UniqueRecipientCount(),
		CapBasisPoints:     s.cfg.CapBasisPoints,
	}, nil
}
