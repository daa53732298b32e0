// Package pattern implements the append-only Pattern Store using PostgreSQL.
// Patterns are written once and never updated or deleted; similarity search
// ranks candidates by cosine similarity computed over the scanned rows.
package pattern

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/journalmind/journalmind-backend/internal/adapter/postgres"
	"github.com/journalmind/journalmind-backend/internal/domain"
)

const table = "patterns"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides pattern persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new pattern repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// patternRow mirrors one patterns table row.
type patternRow struct {
	ID          uuid.UUID `db:"id"`
	Observation string    `db:"observation"`
	Context     string    `db:"context"`
	Embedding   []float32 `db:"embedding"`
	CreatedAt   time.Time `db:"created_at"`
}

// Insert persists a new immutable pattern and returns it with the
// store-assigned id and timestamp.
func (r *Repo) Insert(ctx context.Context, p *domain.Pattern) (*domain.Pattern, error) {
	if p == nil {
		return nil, domain.NewValidationError("pattern", "required")
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := psql.Insert(table).
		Columns("id", "observation", "context", "embedding", "created_at").
		Values(id, p.Observation, p.Context, p.Embedding, createdAt).
		Suffix("RETURNING id, observation, context, embedding, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert pattern: %w", err)
	}

	var row patternRow
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "pattern", id)
	}

	return toDomain(row), nil
}

// TopK returns at most k stored patterns whose cosine similarity to the
// query vector exceeds minScore, ordered by descending similarity. Equal
// scores keep insertion order (earliest first). An empty result is normal,
// not an error.
func (r *Repo) TopK(ctx context.Context, queryVec []float32, k int, minScore float64) ([]domain.PatternMatch, error) {
	query := psql.Select("id", "observation", "context", "embedding", "created_at").
		From(table).
		OrderBy("created_at ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select patterns: %w", err)
	}

	var rows []patternRow
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select patterns: %w", err)
	}

	matches := make([]domain.PatternMatch, 0, len(rows))
	for _, row := range rows {
		score := cosineSimilarity(queryVec, row.Embedding)
		if score <= minScore {
			continue
		}
		matches = append(matches, domain.PatternMatch{
			PatternID:   row.ID,
			Observation: row.Observation,
			Context:     row.Context,
			Score:       score,
			Distance:    1 - score,
		})
	}

	// Rows arrive in insertion order; a stable sort keeps earliest-first
	// ordering among equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// Count returns the number of stored patterns.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count patterns: %w", err)
	}

	var count int
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &count, sql, args...); err != nil {
		return 0, fmt.Errorf("count patterns: %w", err)
	}
	return count, nil
}

func toDomain(row patternRow) *domain.Pattern {
	return &domain.Pattern{
		ID:          row.ID,
		Observation: row.Observation,
		Context:     row.Context,
		Embedding:   row.Embedding,
		CreatedAt:   row.CreatedAt,
	}
}

// cosineSimilarity computes the normalized dot product of two vectors.
// Mismatched lengths or zero-norm vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
