package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/journalmind/journalmind-backend/internal/domain"
	"github.com/journalmind/journalmind-backend/internal/service/pattern"
	"github.com/journalmind/journalmind-backend/pkg/ctxutil"
)

type patternService interface {
	Record(ctx context.Context, input pattern.RecordInput) (*domain.Pattern, error)
	FindSimilar(ctx context.Context, input pattern.FindSimilarInput) ([]domain.PatternMatch, error)
}

// PatternHandler serves learning pattern endpoints.
type PatternHandler struct {
	patterns patternService
	log      *slog.Logger
}

// NewPatternHandler creates a PatternHandler.
func NewPatternHandler(patterns patternService, logger *slog.Logger) *PatternHandler {
	return &PatternHandler{
		patterns: patterns,
		log:      logger.With("handler", "patterns"),
	}
}

type recordPatternRequest struct {
	Observation string `json:"observation"`
	Context     string `json:"context"`
}

type patternResponse struct {
	ID          uuid.UUID `json:"id"`
	Observation string    `json:"observation"`
	Context     string    `json:"context,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// defaultSearchMaxItems applies when the request omits max_items; the
// service rejects non-positive values outright.
const defaultSearchMaxItems = 20

type searchPatternsRequest struct {
	Observation string `json:"observation"`
	MaxItems    int    `json:"max_items"`
}

type patternMatchResponse struct {
	PatternID   uuid.UUID `json:"pattern_id"`
	Observation string    `json:"observation"`
	Context     string    `json:"context,omitempty"`
	Score       float64   `json:"score"`
	Distance    float64   `json:"distance"`
}

type searchPatternsResponse struct {
	Matches []patternMatchResponse `json:"matches"`
}

// Record stores an observation as a learning pattern.
// POST /api/v1/patterns
func (h *PatternHandler) Record(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	var req recordPatternRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	created, err := h.patterns.Record(r.Context(), pattern.RecordInput{
		Observation: req.Observation,
		Context:     req.Context,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "record pattern", slog.String("error", err.Error()))
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, patternResponse{
		ID:          created.ID,
		Observation: created.Observation,
		Context:     created.Context,
		CreatedAt:   created.CreatedAt,
	})
}

// Search returns stored patterns similar to the given observation.
// POST /api/v1/patterns/search
func (h *PatternHandler) Search(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	var req searchPatternsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	if req.MaxItems == 0 {
		req.MaxItems = defaultSearchMaxItems
	}

	matches, err := h.patterns.FindSimilar(r.Context(), pattern.FindSimilarInput{
		Observation: req.Observation,
		MaxItems:    req.MaxItems,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := searchPatternsResponse{Matches: make([]patternMatchResponse, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, patternMatchResponse{
			PatternID:   m.PatternID,
			Observation: m.Observation,
			Context:     m.Context,
			Score:       m.Score,
			Distance:    m.Distance,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
