package pattern

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

// FindSimilar embeds the observation and returns stored patterns whose
// cosine similarity strictly exceeds the configured threshold, ranked by
// descending similarity. An empty store yields an empty result, not an
// error. A failed embedding yields ErrEmbeddingFailed.
func (s *Service) FindSimilar(ctx context.Context, input FindSimilarInput) ([]domain.PatternMatch, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.MaxItems
	if limit > s.cfg.MaxResults {
		limit = s.cfg.MaxResults
	}

	vectors, err := s.embedder.Embed(ctx, []string{input.Observation})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, domain.ErrEmbeddingFailed
	}

	matches, err := s.store.TopK(ctx, vectors[0], limit, s.cfg.SimilarityThreshold)
	if err != nil {
		return nil, fmt.Errorf("similarity query: %w", err)
	}

	s.log.DebugContext(ctx, "similarity query served",
		slog.Int("matches", len(matches)),
		slog.Int("limit", limit),
	)
	return matches, nil
}
