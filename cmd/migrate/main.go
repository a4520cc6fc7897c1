// Command migrate applies the embedded change history migrations and exits.
// It is safe to run repeatedly; an up-to-date database is left untouched.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/approveit/internal/adapter/postgres"
	"github.com/heartmarshall/approveit/internal/app"
	"github.com/heartmarshall/approveit/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	applied, err := postgres.EnsureSchema(ctx, pool)
	if err != nil {
		logger.Error("ensure schema failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("schema up to date", slog.Int("applied", applied))
}
