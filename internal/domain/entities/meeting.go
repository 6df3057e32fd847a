package entities

import (
	"time"

	"github.com/google/uuid"
)

// Attendee is one entry on a meeting's attendee list. Order is preserved
// exactly as supplied at creation.
type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Meeting is the stored meeting record
type Meeting struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Title         string     `json:"title" gorm:"type:text;not null"`
	Attendees     []Attendee `json:"attendees,omitempty" gorm:"type:text;serializer:json"`
	CachedSummary *string    `json:"cached_summary,omitempty" gorm:"type:text"`
	CreatedAt     time.Time  `json:"created_at" gorm:"index"`
	EndedAt       *time.Time `json:"ended_at,omitempty" gorm:"index"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a new meeting. The meeting is active until End is
// called.
func NewMeeting(title string, attendees []Attendee) *Meeting {
	return &Meeting{
		ID:        uuid.New(),
		Title:     title,
		Attendees: attendees,
		CreatedAt: time.Now().UTC(),
	}
}

// IsActive reports whether the meeting has not been ended
func (m *Meeting) IsActive() bool {
	return m.EndedAt == nil
}

// End sets the end timestamp. Ending an already ended meeting leaves the
// original timestamp untouched.
func (m *Meeting) End() {
	if m.EndedAt != nil {
		return
	}
	now := time.Now().UTC()
	m.EndedAt = &now
}
