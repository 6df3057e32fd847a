package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/meetnotes/meetnotes/errors"
	"github.com/meetnotes/meetnotes/internal/domain/entities"
	"github.com/meetnotes/meetnotes/internal/domain/repositories"
	"github.com/meetnotes/meetnotes/pkg/ai"
)

// Service is the summary cache pipeline: it reuses the summary persisted on
// the meeting record when one exists, and otherwise generates, persists and
// returns a fresh one. The cache is never invalidated automatically;
// staleness against the current transcript is an accepted tradeoff.
type Service struct {
	meetings    repositories.MeetingRepository
	transcripts repositories.TranscriptRepository
	summarizer  ai.Summarizer
	maxBullets  int
	logger      *zap.Logger
}

// NewService constructs the summary pipeline
func NewService(
	meetings repositories.MeetingRepository,
	transcripts repositories.TranscriptRepository,
	summarizer ai.Summarizer,
	maxBullets int,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetings:    meetings,
		transcripts: transcripts,
		summarizer:  summarizer,
		maxBullets:  maxBullets,
		logger:      logger,
	}
}

// GetOrGenerate returns the cached summary when present, otherwise invokes
// the summarization capability on the reconstructed transcript and persists
// the result. A corrupt cached blob counts as a miss, never as an error.
// Capability failures propagate unchanged; there is no retry and no
// de-duplication of concurrent calls for the same meeting.
func (s *Service) GetOrGenerate(ctx context.Context, meeting *entities.Meeting) (*entities.SummaryResult, error) {
	if meeting == nil {
		return nil, apperrors.ErrInvalidArgument("meeting cannot be nil")
	}

	if meeting.CachedSummary != nil {
		var cached entities.SummaryResult
		err := json.Unmarshal([]byte(*meeting.CachedSummary), &cached)
		if err == nil {
			return &cached, nil
		}
		s.logger.Warn("cached summary is corrupt, regenerating",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err),
		)
	}

	transcript, err := s.reconstructTranscript(ctx, meeting)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct transcript: %w", err)
	}

	result, err := s.summarizer.Summarize(ctx, transcript, s.maxBullets)
	if err != nil {
		return nil, err
	}

	blob, err := json.Marshal(result)
	if err != nil {
		return nil, apperrors.ErrSerializationFailed("summary result", err)
	}

	cached := string(blob)
	meeting.CachedSummary = &cached
	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to persist summary: %w", err)
	}

	s.logger.Info("summary generated",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("summarizer", s.summarizer.Name()),
		zap.Int("bullets", len(result.Bullets)),
	)

	return result, nil
}

// Invalidate clears the persisted summary so the next GetOrGenerate call
// regenerates. This is the one supported way to drop a stale cache.
func (s *Service) Invalidate(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return apperrors.ErrInvalidArgument("meeting cannot be nil")
	}
	meeting.CachedSummary = nil
	return s.meetings.Update(ctx, meeting)
}

// reconstructTranscript joins the meeting's chunk texts in ascending index
// order with single spaces
func (s *Service) reconstructTranscript(ctx context.Context, meeting *entities.Meeting) (string, error) {
	chunks, err := s.transcripts.FindByMeetingID(ctx, meeting.ID)
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Text)
	}
	return strings.Join(texts, " "), nil
}
