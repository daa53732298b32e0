// Package pattern provides business logic for recording learning patterns
// and retrieving semantically similar prior observations.
package pattern

import (
	"context"
	"log/slog"

	"github.com/journalmind/journalmind-backend/internal/config"
	"github.com/journalmind/journalmind-backend/internal/domain"
)

type embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
}

type patternStore interface {
	Insert(ctx context.Context, p *domain.Pattern) (*domain.Pattern, error)
	TopK(ctx context.Context, queryVec []float32, k int, minScore float64) ([]domain.PatternMatch, error)
	Count(ctx context.Context) (int, error)
}

// Service wraps the pattern store and the embedding provider.
type Service struct {
	log      *slog.Logger
	embedder embedder
	store    patternStore
	cfg      config.PatternConfig
}

// NewService creates a new pattern service.
func NewService(log *slog.Logger, embedder embedder, store patternStore, cfg config.PatternConfig) *Service {
	return &Service{
		log:      log.With("service", "pattern"),
		embedder: embedder,
		store:    store,
		cfg:      cfg,
	}
}

// Count returns the number of recorded patterns.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}
