package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pattern is a stored learning observation with its embedding vector.
// Patterns are append-only: created once, never updated or deleted.
type Pattern struct {
	ID          uuid.UUID
	Observation string
	Context     string
	Embedding   []float32
	CreatedAt   time.Time
}

// PatternMatch is one similarity-search result. Score is cosine similarity
// in [-1, 1]; Distance is 1 - Score, a monotonic ranking aid rather than a
// true metric distance.
type PatternMatch struct {
	PatternID   uuid.UUID
	Observation string
	Context     string
	Score       float64
	Distance    float64
}
