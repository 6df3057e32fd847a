package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
	"github.com/meetnotes/meetnotes/internal/domain/repositories"
	pkgvalidator "github.com/meetnotes/meetnotes/pkg/validator"
)

// transcriptRepository implements the TranscriptRepository interface
type transcriptRepository struct {
	db       *gorm.DB
	validate *pkgvalidator.CustomValidator
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) repositories.TranscriptRepository {
	return &transcriptRepository{db: db, validate: pkgvalidator.New()}
}

// Add persists a single chunk
func (r *transcriptRepository) Add(ctx context.Context, chunk *entities.TranscriptChunk) error {
	if chunk == nil {
		return errors.New("chunk cannot be nil")
	}
	if err := r.validate.Validate(chunk); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrInvalidChunk, err)
	}
	return r.db.WithContext(ctx).Create(chunk).Error
}

// AddBatch persists many chunks in one transaction, all-or-nothing
func (r *transcriptRepository) AddBatch(ctx context.Context, chunks []*entities.TranscriptChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	for _, chunk := range chunks {
		if chunk == nil {
			return errors.New("chunk cannot be nil")
		}
		if err := r.validate.Validate(chunk); err != nil {
			return fmt.Errorf("%w: %v", entities.ErrInvalidChunk, err)
		}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&chunks).Error
	})
}

// FindByMeetingID retrieves all chunks for a meeting sorted ascending by
// index. Transcript reconstruction depends on this order; on duplicate
// indices rowid keeps insertion order stable.
func (r *transcriptRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.TranscriptChunk, error) {
	var chunks []*entities.TranscriptChunk
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("idx ASC, rowid ASC").
		Find(&chunks).Error
	return chunks, err
}

// FindLatest retrieves the chunk with the maximum index for a meeting
func (r *transcriptRepository) FindLatest(ctx context.Context, meetingID uuid.UUID) (*entities.TranscriptChunk, error) {
	var chunk entities.TranscriptChunk
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("idx DESC, rowid DESC").
		First(&chunk).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chunk, nil
}
