package pattern

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/journalmind/journalmind-backend/internal/domain"
)

// Record embeds the observation and appends a new pattern to the store.
// If the embedding provider returns no vector the pattern is not written
// and ErrEmbeddingFailed is returned; there is no partial state to clean up.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.Pattern, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vectors, err := s.embedder.Embed(ctx, []string{input.Observation})
	if err != nil {
		return nil, fmt.Errorf("embed observation: %w", err)
	}
	if len(vectors) == 0 {
		return nil, domain.ErrEmbeddingFailed
	}
	if want := s.embedder.Dimensions(); len(vectors[0]) != want {
		return nil, fmt.Errorf("embedding has %d dimensions, expected %d: %w", len(vectors[0]), want, domain.ErrEmbeddingFailed)
	}

	created, err := s.store.Insert(ctx, &domain.Pattern{
		Observation: input.Observation,
		Context:     input.Context,
		Embedding:   vectors[0],
	})
	if err != nil {
		return nil, fmt.Errorf("insert pattern: %w", err)
	}

	s.log.InfoContext(ctx, "pattern recorded",
		slog.String("pattern_id", created.ID.String()),
		slog.Int("dimensions", len(created.Embedding)),
	)
	return created, nil
}
