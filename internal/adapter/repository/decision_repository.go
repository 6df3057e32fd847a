package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
	"github.com/meetnotes/meetnotes/internal/domain/repositories"
)

// decisionRepository implements the DecisionRepository interface
type decisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new decision repository
func NewDecisionRepository(db *gorm.DB) repositories.DecisionRepository {
	return &decisionRepository{db: db}
}

// Add creates and persists a new decision for a meeting
func (r *decisionRepository) Add(ctx context.Context, meetingID uuid.UUID, text string, owner *string) (*entities.Decision, error) {
	decision := entities.NewDecision(meetingID, text, owner)
	if err := r.db.WithContext(ctx).Create(decision).Error; err != nil {
		return nil, err
	}
	return decision, nil
}

// FindByMeetingID retrieves all decisions for a meeting in insertion order
func (r *decisionRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Decision, error) {
	var decisions []*entities.Decision
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("rowid ASC").
		Find(&decisions).Error
	return decisions, err
}

// Update overwrites an existing decision
func (r *decisionRepository) Update(ctx context.Context, decision *entities.Decision) error {
	if decision == nil {
		return errors.New("decision cannot be nil")
	}
	res := r.db.WithContext(ctx).
		Model(&entities.Decision{}).
		Where("id = ?", decision.ID).
		Select("*").Omit("id").
		Updates(decision)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrDecisionNotFound
	}
	return nil
}

// Delete removes a decision
func (r *decisionRepository) Delete(ctx context.Context, decision *entities.Decision) error {
	if decision == nil {
		return errors.New("decision cannot be nil")
	}
	return r.db.WithContext(ctx).Where("id = ?", decision.ID).Delete(&entities.Decision{}).Error
}
