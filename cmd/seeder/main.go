// Command seeder loads approved categories and questions from a YAML file.
//
// Usage:
//
//	seeder [--config=seeder.yaml] [--content=content.yaml] [--creator=root@example.com] [--dry-run]
//
// Flags override SEEDER_* variables, which override the config file. The
// exit code is 1 when the run fails or any category was rejected.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quiz-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/quiz-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/quiz-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/quiz-backend/internal/app"
	"github.com/heartmarshall/quiz-backend/internal/app/seeder"
	"github.com/heartmarshall/quiz-backend/internal/config"
)

func main() {
	var flags seeder.Config
	configPath := flag.String("config", "", "seeder YAML config file")
	flag.StringVar(&flags.ContentPath, "content", "", "content YAML file")
	flag.StringVar(&flags.CreatorEmail, "creator", "", "email of the user credited with the content")
	flag.BoolVar(&flags.DryRun, "dry-run", false, "validate content without writing")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(appCfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	res, err := run(ctx, logger, appCfg.Database, *configPath, flags)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if res.HasErrors() {
		logger.Warn("seeding finished with rejected categories", slog.Int("invalid", res.Invalid))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, db config.DatabaseConfig, configPath string, flags seeder.Config) (seeder.Result, error) {
	cfg, err := seeder.LoadConfig(configPath, flags)
	if err != nil {
		return seeder.Result{}, err
	}

	content, err := seeder.LoadContent(cfg.ContentPath)
	if err != nil {
		return seeder.Result{}, fmt.Errorf("load content: %w", err)
	}

	pool, err := postgres.NewPool(ctx, db)
	if err != nil {
		return seeder.Result{}, err
	}
	defer pool.Close()

	return seeder.NewPipeline(logger,
		user.New(pool), category.New(pool), question.New(pool),
		postgres.NewTxManager(pool), cfg,
	).Run(ctx, content)
}
