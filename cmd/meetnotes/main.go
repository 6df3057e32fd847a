package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/meetnotes/meetnotes/internal/adapter/repository"
	"github.com/meetnotes/meetnotes/internal/cli"
	"github.com/meetnotes/meetnotes/internal/infrastructure/database"
	"github.com/meetnotes/meetnotes/internal/usecase/export"
	"github.com/meetnotes/meetnotes/internal/usecase/summary"
	"github.com/meetnotes/meetnotes/pkg/ai"
	"github.com/meetnotes/meetnotes/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := database.NewSQLiteDB(cfg)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	// Initialize repositories
	meetingRepo := repository.NewMeetingRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	decisionRepo := repository.NewDecisionRepository(db)

	// Select the summarization capability once at startup
	summarizer := ai.Probe(&cfg.Summarizer, logger)

	// Initialize use cases
	summaryService := summary.NewService(meetingRepo, transcriptRepo, summarizer, cfg.Summarizer.MaxBullets, logger)
	exporter := export.NewExporter(logger)

	deps := &cli.Dependencies{
		Meetings:    meetingRepo,
		Transcripts: transcriptRepo,
		Decisions:   decisionRepo,
		Summaries:   summaryService,
		Exporter:    exporter,
		Config:      cfg,
		Logger:      logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(deps).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Debug {
		return zap.NewDevelopment()
	}
	// Keep CLI output clean: structured logs go to stderr at warn level.
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}
