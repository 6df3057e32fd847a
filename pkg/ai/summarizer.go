package ai

import (
	"context"

	"go.uber.org/zap"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
	"github.com/meetnotes/meetnotes/pkg/config"
)

// Summarizer turns a transcript into a structured summary. Implementations
// must treat every failure as fatal for the call; retries are the caller's
// responsibility.
type Summarizer interface {
	// Summarize produces at most maxBullets summary bullets plus the
	// decisions and action items found in the transcript.
	Summarize(ctx context.Context, transcript string, maxBullets int) (*entities.SummaryResult, error)

	// Name identifies the capability variant for logging
	Name() string
}

// Probe selects the summarization capability once at startup. A configured
// model endpoint wins; otherwise the on-device heuristic is used. The
// selection is never revisited per call.
func Probe(cfg *config.SummarizerConfig, logger *zap.Logger) Summarizer {
	if cfg != nil && cfg.APIKey != "" {
		s := NewModelSummarizer(cfg)
		logger.Info("summarization capability selected",
			zap.String("summarizer", s.Name()),
			zap.String("model", cfg.Model),
		)
		return s
	}

	s := NewHeuristicSummarizer()
	logger.Info("summarization capability selected",
		zap.String("summarizer", s.Name()),
	)
	return s
}
