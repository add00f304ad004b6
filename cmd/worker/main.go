// Package main is the entry point for the taller maintenance worker.
// It runs periodic housekeeping: expired session cleanup and audit retention.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"taller/internal/core/tx"
	"taller/internal/infrastructure/storage/postgres"
	"taller/internal/infrastructure/storage/postgres/auth_repo"
	"taller/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("starting taller worker")

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv("DATABASE_URL")))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	worker := NewWorker(pool, txManager, log)
	worker.auditRetention = getEnvDuration("AUDIT_RETENTION", worker.auditRetention)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Run(ctx)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	wg.Wait()
	log.Info("worker stopped")
}

// Worker runs periodic maintenance jobs against the workshop database.
type Worker struct {
	pool      *postgres.Pool
	txManager *postgres.TxManager
	tokens    *auth_repo.TokenRepo
	log       *logger.Logger

	// auditRetention is how long audit entries are kept
	auditRetention time.Duration
}

func NewWorker(pool *postgres.Pool, txManager *postgres.TxManager, log *logger.Logger) *Worker {
	return &Worker{
		pool:           pool,
		txManager:      txManager,
		tokens:         auth_repo.NewTokenRepo(),
		log:            log.WithComponent("worker"),
		auditRetention: 90 * 24 * time.Hour,
	}
}

// Run executes maintenance jobs until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	// Repositories resolve the TxManager from context
	ctx = tx.WithManager(ctx, w.txManager)

	cleanupTicker := time.NewTicker(1 * time.Hour)
	defer cleanupTicker.Stop()

	statsTicker := time.NewTicker(5 * time.Minute)
	defer statsTicker.Stop()

	// Run once at startup so a freshly deployed worker catches up immediately
	w.cleanupTokens(ctx)
	w.pruneAudit(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-cleanupTicker.C:
			w.cleanupTokens(ctx)
			w.pruneAudit(ctx)
		case <-statsTicker.C:
			postgres.LogPoolStats(ctx, w.pool.Unwrap())
		}
	}
}

func (w *Worker) cleanupTokens(ctx context.Context) {
	count, err := w.tokens.CleanupExpiredTokens(ctx)
	if err != nil {
		w.log.Errorw("token cleanup failed", "error", err)
		return
	}
	if count > 0 {
		w.log.Infow("cleaned up expired refresh tokens", "count", count)
	}
}

func (w *Worker) pruneAudit(ctx context.Context) {
	result, err := w.pool.Exec(ctx, `
		DELETE FROM sys_audit
		WHERE created_at < NOW() - make_interval(hours => $1)
	`, int(w.auditRetention.Hours()))
	if err != nil {
		w.log.Errorw("audit retention pruning failed", "error", err)
		return
	}
	if result.RowsAffected() > 0 {
		w.log.Infow("pruned old audit entries", "count", result.RowsAffected())
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
