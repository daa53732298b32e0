package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
	"github.com/journalmind/journalmind-backend/internal/service/distribution"
	"github.com/journalmind/journalmind-backend/internal/transport/middleware"
	"github.com/journalmind/journalmind-backend/pkg/ctxutil"
)

type distributionService interface {
	SubmitForSettlement(ctx context.Context, entryID uuid.UUID) (*distribution.SubmitResult, error)
	Approve(ctx context.Context, input distribution.ApproveInput) (*distribution.ApproveResult, error)
	Deny(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	GetStats(ctx context.Context) (*distribution.Stats, error)
}

// RewardHandler serves reward settlement endpoints. Approve and Deny are
// restricted to the admin role.
type RewardHandler struct {
	distribution distributionService
	log          *slog.Logger
}

// NewRewardHandler creates a RewardHandler.
func NewRewardHandler(distribution distributionService, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{
		distribution: distribution,
		log:          logger.With("handler", "rewards"),
	}
}

type submitResponse struct {
	EntryID      uuid.UUID `json:"entry_id"`
	RewardEarned bool      `json:"reward_earned"`
	RewardAmount *string   `json:"reward_amount"`
}

type approveRequest struct {
	Amount string `json:"amount"`
}

type approveResponse struct {
	Entry  entryResponse `json:"entry"`
	TxHash string        `json:"tx_hash"`
}

type statsResponse struct {
	TotalSupply        string `json:"total_supply"`
	TotalDistributed   string `json:"total_distributed"`
	MaxDistributable   string `json:"max_distributable"`
	DistributorBalance string `json:"distributor_balance"`
	RemainingUnderCap  string `json:"remaining_under_cap"`
	UniqueRecipients   int    `json:"unique_recipients"`
	CapBasisPoints     int64  `json:"cap_basis_points"`
}

// Submit recomputes and persists an entry's reward.
// POST /api/v1/rewards/{entryID}/submit
func (h *RewardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	entryID, err := uuid.Parse(r.PathValue("entryID"))
	if err != nil {
		writeDomainError(w, domain.NewValidationError("entryID", "not a valid uuid"))
		return
	}

	res, err := h.distribution.SubmitForSettlement(r.Context(), entryID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := submitResponse{EntryID: res.EntryID, RewardEarned: res.Earned()}
	if res.Earned() {
		s := res.RewardAmount.String()
		resp.RewardAmount = &s
	}
	writeJSON(w, http.StatusOK, resp)
}

// Approve settles an entry's reward with an on-chain transfer.
// POST /api/v1/rewards/{entryID}/approve
func (h *RewardHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}

	entryID, err := uuid.Parse(r.PathValue("entryID"))
	if err != nil {
		writeDomainError(w, domain.NewValidationError("entryID", "not a valid uuid"))
		return
	}

	var req approveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	amount, err := domain.ParseTokenAmount(req.Amount)
	if err != nil {
		writeDomainError(w, domain.NewValidationError("amount", "not a base-unit integer"))
		return
	}

	res, err := h.distribution.Approve(r.Context(), distribution.ApproveInput{
		EntryID: entryID,
		Amount:  amount,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "approve reward",
			slog.String("entry_id", entryID.String()),
			slog.String("error", err.Error()),
		)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, approveResponse{
		Entry:  toEntryResponse(res.Entry),
		TxHash: res.TxHash,
	})
}

// Deny marks an entry's reward as denied without a transfer.
// POST /api/v1/rewards/{entryID}/deny
func (h *RewardHandler) Deny(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}

	entryID, err := uuid.Parse(r.PathValue("entryID"))
	if err != nil {
		writeDomainError(w, domain.NewValidationError("entryID", "not a valid uuid"))
		return
	}

	entry, err := h.distribution.Deny(r.Context(), entryID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Stats returns the distribution ledger snapshot.
// GET /api/v1/rewards/stats
func (h *RewardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	stats, err := h.distribution.GetStats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalSupply:        stats.TotalSupply.String(),
		TotalDistributed:   stats.TotalDistributed.String(),
		MaxDistributable:   stats.MaxDistributable.String(),
		DistributorBalance: stats.DistributorBalance.String(),
		RemainingUnderCap:  stats.RemainingUnderCap.String(),
		UniqueRecipients:   stats.UniqueRecipients,
		CapBasisPoints:     stats.CapBasisPoints,
	})
}
