package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/approveit/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/approveit/internal/adapter/postgres/history"
	"github.com/heartmarshall/approveit/internal/auth"
	"github.com/heartmarshall/approveit/internal/config"
	"github.com/heartmarshall/approveit/internal/service/history"
	"github.com/heartmarshall/approveit/internal/service/publish"
	"github.com/heartmarshall/approveit/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies the history schema when enabled, and serves HTTP
// until ctx is canceled, then shuts down gracefully.
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
		return err
	}
	defer pool.Close()

	if cfg.History.EnsureSchemaOnStart {
		applied, err := postgres.EnsureSchema(ctx, pool)
		if err != nil {
			return err
		}
		logger.Info("history schema ready", slog.Int("applied", applied))
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newHTTPHandler(cfg, logger, pool),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func newHTTPHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) http.Handler {
	store := historyrepo.New(pool)
	recorder := history.NewService(logger, store)
	hook := publish.NewHook(logger, recorder, postgres.NewTxManager(pool))
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return rest.NewRouter(
		logger,
		rest.NewHealthHandler(pool, store, BuildVersion()),
		rest.NewPublishHandler(hook, cfg.History.MaxBodyBytes, logger),
		tokens,
	)
}
