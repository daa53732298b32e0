package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
	"github.com/journalmind/journalmind-backend/internal/service/journal"
	"github.com/journalmind/journalmind-backend/pkg/ctxutil"
)

type journalService interface {
	CreateEntry(ctx context.Context, input journal.CreateEntryInput) (*journal.CreateEntryResult, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, input journal.ListInput) ([]*domain.JournalEntry, int, error)
}

// EntryHandler serves journal entry endpoints.
type EntryHandler struct {
	journal journalService
	log     *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(journal journalService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		journal: journal,
		log:     logger.With("handler", "entries"),
	}
}

type mediaPayload struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

type createEntryRequest struct {
	Content       string         `json:"content"`
	Media         []mediaPayload `json:"media"`
	WalletAddress string         `json:"wallet_address"`
}

type entryResponse struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	Content       string         `json:"content"`
	Media         []mediaPayload `json:"media,omitempty"`
	WalletAddress string         `json:"wallet_address"`
	CreatedAt     time.Time      `json:"created_at"`
	RewardStatus  string         `json:"reward_status"`
	RewardAmount  *string        `json:"reward_amount"`
	DistributedAt *time.Time     `json:"distributed_at"`
}

type createEntryResponse struct {
	Entry        entryResponse `json:"entry"`
	RewardEarned bool          `json:"reward_earned"`
	RewardAmount *string       `json:"reward_amount"`
}

type listEntriesResponse struct {
	Entries []entryResponse `json:"entries"`
	Total   int             `json:"total"`
}

func toEntryResponse(e *domain.JournalEntry) entryResponse {
	resp := entryResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		Content:       e.Content,
		WalletAddress: e.WalletAddress,
		CreatedAt:     e.CreatedAt,
		RewardStatus:  string(e.RewardStatus),
		DistributedAt: e.DistributedAt,
	}
	for _, m := range e.Media {
		resp.Media = append(resp.Media, mediaPayload{Kind: string(m.Kind), URL: m.URL})
	}
	if e.RewardAmount != nil {
		s := e.RewardAmount.String()
		resp.RewardAmount = &s
	}
	return resp
}

// Create records a new journal entry and submits it for settlement.
// POST /api/v1/entries
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	input := journal.CreateEntryInput{
		UserID:        userID,
		Content:       req.Content,
		WalletAddress: req.WalletAddress,
	}
	for _, m := range req.Media {
		input.Media = append(input.Media, journal.MediaInput{Kind: domain.MediaKind(m.Kind), URL: m.URL})
	}

	res, err := h.journal.CreateEntry(r.Context(), input)
	if err != nil {
		h.log.ErrorContext(r.Context(), "create entry", slog.String("error", err.Error()))
		writeDomainError(w, err)
		return
	}

	resp := createEntryResponse{
		Entry:        toEntryResponse(res.Entry),
		RewardEarned: res.Settlement.Earned(),
	}
	if res.Settlement.Earned() {
		s := res.Settlement.RewardAmount.String()
		resp.RewardAmount = &s
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Get returns a single entry.
// GET /api/v1/entries/{id}
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, domain.NewValidationError("id", "not a valid uuid"))
		return
	}

	entry, err := h.journal.GetEntry(r.Context(), entryID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// List returns the caller's entries newest first.
// GET /api/v1/entries?limit=20&offset=0
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	input := journal.ListInput{UserID: userID}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			input.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			input.Offset = n
		}
	}

	entries, total, err := h.journal.ListEntries(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := listEntriesResponse{Entries: make([]entryResponse, 0, len(entries)), Total: total}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}
