package rest

import (
	"log/slog"
	"net/http"

	"github.com/journalmind/journalmind-backend/internal/config"
	"github.com/journalmind/journalmind-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Journal      journalService
	Patterns     patternService
	Distribution distributionService
	DB           dbPinger
	Auth         middleware.Middleware
	Version      string
	CORS         config.CORSConfig
	Log          *slog.Logger
}

// NewRouter builds the HTTP handler: route table plus the middleware stack.
func NewRouter(deps RouterDeps) http.Handler {
	entries := NewEntryHandler(deps.Journal, deps.Log)
	patterns := NewPatternHandler(deps.Patterns, deps.Log)
	rewards := NewRewardHandler(deps.Distribution, deps.Log)
	health := NewHealthHandler(deps.DB, deps.Version)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	mux.HandleFunc("POST /api/v1/entries", entries.Create)
	mux.HandleFunc("GET /api/v1/entries", entries.List)
	mux.HandleFunc("GET /api/v1/entries/{id}", entries.Get)

	mux.HandleFunc("POST /api/v1/patterns", patterns.Record)
	mux.HandleFunc("POST /api/v1/patterns/search", patterns.Search)

	mux.HandleFunc("POST /api/v1/rewards/{entryID}/submit", rewards.Submit)
	mux.HandleFunc("POST /api/v1/rewards/{entryID}/approve", rewards.Approve)
	mux.HandleFunc("POST /api/v1/rewards/{entryID}/deny", rewards.Deny)
	mux.HandleFunc("GET /api/v1/rewards/stats", rewards.Stats)

	return middleware.Chain(
		middleware.Recovery(deps.Log),
		middleware.RequestID,
		middleware.CORS(deps.CORS),
		deps.Auth,
		middleware.Logger(deps.Log),
	)(mux)
}
