package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

// DecisionRepository defines the interface for decision data access
type DecisionRepository interface {
	// Add creates and persists a new decision for a meeting
	Add(ctx context.Context, meetingID uuid.UUID, text string, owner *string) (*entities.Decision, error)

	// FindByMeetingID retrieves all decisions for a meeting in insertion
	// order.
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Decision, error)

	// Update overwrites an existing decision, keyed by ID. Returns
	// entities.ErrDecisionNotFound when the ID is absent.
	Update(ctx context.Context, decision *entities.Decision) error

	// Delete removes a decision
	Delete(ctx context.Context, decision *entities.Decision) error
}
