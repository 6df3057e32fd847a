package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create persists a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID. Returns nil, nil when the
	// meeting does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindAll retrieves meetings in insertion order. When activeOnly is
	// set, only meetings without an end timestamp are returned.
	FindAll(ctx context.Context, activeOnly bool) ([]*entities.Meeting, error)

	// Search retrieves meetings whose title contains the query as a
	// case-sensitive substring, in the same order as FindAll.
	Search(ctx context.Context, query string) ([]*entities.Meeting, error)

	// Update overwrites all fields of an existing meeting, keyed by ID.
	// Returns entities.ErrMeetingNotFound when the ID is absent.
	Update(ctx context.Context, meeting *entities.Meeting) error

	// EndMeeting sets the end timestamp if unset and persists the meeting.
	// Ending an already ended meeting is a no-op.
	EndMeeting(ctx context.Context, meeting *entities.Meeting) error

	// Delete removes the meeting and cascades deletion to all of its
	// transcript chunks and decisions.
	Delete(ctx context.Context, meeting *entities.Meeting) error

	// FindActive retrieves one meeting without an end timestamp, or
	// nil, nil when there is none. Callers are responsible for keeping at
	// most one meeting active; across duplicates no ordering is promised.
	FindActive(ctx context.Context) (*entities.Meeting, error)
}
