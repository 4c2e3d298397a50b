// Command cleanup purges exams that were soft-deleted longer ago than the
// retention period. Run it from cron; it exits non-zero on failure.
//
// Usage:
//
//	cleanup [--retention-days=N]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quiz-backend/internal/adapter/postgres/exam"
	"github.com/heartmarshall/quiz-backend/internal/app"
	"github.com/heartmarshall/quiz-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	retention := flag.Int("retention-days", cfg.Exam.RetentionDays, "keep soft-deleted exams this many days")
	flag.Parse()

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if err := run(ctx, logger, cfg.Database, *retention); err != nil {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, db config.DatabaseConfig, retentionDays int) error {
	if retentionDays < 1 {
		return errors.New("retention must be at least one day")
	}

	pool, err := postgres.NewPool(ctx, db)
	if err != nil {
		return err
	}
	defer pool.Close()

	before := time.Now().UTC().AddDate(0, 0, -retentionDays)
	start := time.Now()

	n, err := exam.New(pool).HardDeleteOld(ctx, before)
	if err != nil {
		return fmt.Errorf("purge exams deleted before %s: %w", before.Format(time.DateOnly), err)
	}

	logger.Info("purged deleted exams",
		slog.Int64("count", n),
		slog.Time("deleted_before", before),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}
