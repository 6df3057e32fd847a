package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
	"github.com/meetnotes/meetnotes/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create persists a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

// FindAll retrieves all meetings in insertion order. SQLite rowid grows
// with inserts, which gives the documented natural order.
func (r *meetingRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	query := r.db.WithContext(ctx).Model(&entities.Meeting{}).Order("rowid ASC")
	if activeOnly {
		query = query.Where("ended_at IS NULL")
	}
	err := query.Find(&meetings).Error
	return meetings, err
}

// Search retrieves meetings whose title contains the query. SQLite LIKE is
// case-insensitive for ASCII, so instr keeps the match case-sensitive.
func (r *meetingRepository) Search(ctx context.Context, query string) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Where("instr(title, ?) > 0", query).
		Order("rowid ASC").
		Find(&meetings).Error
	return meetings, err
}

// Update overwrites all fields of an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	res := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", meeting.ID).
		Select("*").Omit("id").
		Updates(meeting)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}

// EndMeeting sets the end timestamp if unset and persists the meeting.
// Ending an already ended meeting is a no-op.
func (r *meetingRepository) EndMeeting(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	if !meeting.IsActive() {
		return nil
	}
	meeting.End()
	return r.Update(ctx, meeting)
}

// Delete removes the meeting and fans out deletion to its transcript chunks
// and decisions in one transaction. The cascade is explicit rather than
// schema-level so it is portable across backends.
func (r *meetingRepository) Delete(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meeting.ID).Delete(&entities.TranscriptChunk{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", meeting.ID).Delete(&entities.Decision{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", meeting.ID).Delete(&entities.Meeting{}).Error
	})
}

// FindActive retrieves one meeting without an end timestamp. Callers keep
// at most one meeting active; when duplicates exist the first in natural
// order is returned without further guarantees.
func (r *meetingRepository) FindActive(ctx context.Context) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("ended_at IS NULL").
		Order("rowid ASC").
		First(&meeting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}
