package distribution

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

// ApproveResult reports a completed approval.
type ApproveResult struct {
	Entry  *domain.JournalEntry
	TxHash string
}

// Approve settles a pending entry: it validates the admin-supplied amount,
// re-checks the distributor balance and the distribution cap against fresh
// on-chain state, transfers the tokens and atomically marks the entry
// approved. The supplied amount is trusted as an intentional override; it is
// not re-validated against a fresh computation because entries may be
// approved long after creation, when the computation inputs have changed.
//
// The whole flow from the status read to the settlement commit runs under a
// lock: a concurrent approval of the same entry waits, then reads the settled
// status and fails with ErrAlreadySettled before any chain call, so an entry
// can never receive two transfers. A failed or reverted transfer leaves the
// entry pending; retrying is an admin decision.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*ApproveResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Amount == nil || input.Amount.Sign() <= 0 {
		return nil, domain.ErrInvalidRewardAmount
	}

	s.approveMu.Lock()
	defer s.approveMu.Unlock()

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("load entry: %w", err)
	}
	if entry.RewardStatus.IsTerminal() {
		return nil, domain.ErrAlreadySettled
	}
	if !entry.IsRewardEligible() {
		return nil, domain.ErrNotRewardEligible
	}
	if !common.IsHexAddress(entry.WalletAddress) {
		return nil, domain.NewValidationError("wallet_address", "not a valid address")
	}

	amount := input.Amount.BigInt()

	balance, err := s.token.DistributorBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("read distributor balance: %w", err)
	}
	if balance.Cmp(amount) < 0 {
		return nil, domain.ErrInsufficientDistributorBalance
	}

	supply, err := s.token.TotalSupply(ctx)
	if err != nil {
		return nil, fmt.Errorf("read total supply: %w", err)
	}
	history, err := s.token.DistributionHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("read distribution history: %w", err)
	}

	projected := new(big.Int).Add(amount, history.TotalDistributed)
	if projected.Cmp(s.maxDistributable(supply)) > 0 {
		return nil, domain.ErrCapExceeded
	}

	txHash, err := s.token.Transfer(ctx, common.HexToAddress(entry.WalletAddress), input.Amount.BigInt())
	if err != nil {
		s.log.ErrorContext(ctx, "reward transfer failed",
			slog.String("entry_id", input.EntryID.String()),
			slog.String("amount", input.Amount.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}

	computed := entry.RewardAmount

	distributedAt := time.Now().UTC()
	if err := s.entries.SettleApproved(ctx, input.EntryID, input.Amount, distributedAt); err != nil {
		// The transfer is already on chain; surface the mismatch loudly.
		s.log.ErrorContext(ctx, "transfer confirmed but settlement write failed",
			slog.String("entry_id", input.EntryID.String()),
			slog.String("tx", txHash.Hex()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("record settlement: %w", err)
	}

	entry.RewardStatus = domain.RewardStatusApproved
	entry.RewardAmount = input.Amount
	entry.DistributedAt = &distributedAt

	s.log.InfoContext(ctx, "reward approved",
		slog.String("entry_id", input.EntryID.String()),
		slog.String("amount", input.Amount.String()),
		slog.String("computed_amount", computed.String()),
		slog.String("tx", txHash.Hex()),
	)
	return &ApproveResult{Entry: entry, TxHash: txHash.Hex()}, nil
}
