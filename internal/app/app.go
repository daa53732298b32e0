// Package app assembles the application: configuration, logging, database,
// chain and embedding clients, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/journalmind/journalmind-backend/internal/adapter/chain"
	"github.com/journalmind/journalmind-backend/internal/adapter/postgres"
	entryrepo "github.com/journalmind/journalmind-backend/internal/adapter/postgres/entry"
	patternrepo "github.com/journalmind/journalmind-backend/internal/adapter/postgres/pattern"
	"github.com/journalmind/journalmind-backend/internal/adapter/provider/openai"
	"github.com/journalmind/journalmind-backend/internal/auth"
	"github.com/journalmind/journalmind-backend/internal/config"
	"github.com/journalmind/journalmind-backend/internal/service/distribution"
	"github.com/journalmind/journalmind-backend/internal/service/journal"
	patternsvc "github.com/journalmind/journalmind-backend/internal/service/pattern"
	"github.com/journalmind/journalmind-backend/internal/service/reward"
	"github.com/journalmind/journalmind-backend/internal/transport/middleware"
	"github.com/journalmind/journalmind-backend/internal/transport/rest"
)

// accessTokenTTL bounds tokens this backend issues for tooling; API requests
// only validate tokens minted upstream.
const accessTokenTTL = 24 * time.Hour

// Run is the application entry point. It blocks until ctx is cancelled or
// the server fails, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	tokenClient, err := chain.NewTokenClient(ctx, cfg.Chain, logger)
	if err != nil {
		return fmt.Errorf("connect to chain: %w", err)
	}
	defer tokenClient.Close()

	embedder := openai.New(cfg.Embedding, logger)

	txManager := postgres.NewTxManager(pool)
	entries := entryrepo.New(pool)
	patterns := patternrepo.New(pool)

	distributionSvc := distribution.NewService(logger, entries, tokenClient, reward.NewCalculator(), cfg.Distribution)
	patternSvc := patternsvc.NewService(logger, embedder, patterns, cfg.Pattern)
	journalSvc := journal.NewService(logger, entries, distributionSvc, patternSvc, txManager)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, accessTokenTTL)

	handler := rest.NewRouter(rest.RouterDeps{
		Journal:      journalSvc,
		Patterns:     patternSvc,
		Distribution: distributionSvc,
		DB:           pool,
		Auth:         middleware.Auth(jwtManager),
		Version:      BuildVersion(),
		CORS:         cfg.CORS,
		Log:          logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
