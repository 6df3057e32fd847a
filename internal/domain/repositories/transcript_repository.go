package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

// TranscriptRepository defines the interface for transcript chunk data access
type TranscriptRepository interface {
	// Add persists a single chunk
	Add(ctx context.Context, chunk *entities.TranscriptChunk) error

	// AddBatch persists many chunks atomically. Either every chunk is
	// stored or none is.
	AddBatch(ctx context.Context, chunks []*entities.TranscriptChunk) error

	// FindByMeetingID retrieves all chunks for a meeting sorted ascending
	// by sequence index. Duplicate indices keep insertion order.
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.TranscriptChunk, error)

	// FindLatest retrieves the chunk with the maximum index for a meeting,
	// or nil, nil when the meeting has no chunks.
	FindLatest(ctx context.Context, meetingID uuid.UUID) (*entities.TranscriptChunk, error)
}
