package entities

import (
	"time"

	"github.com/google/uuid"
)

// Decision is a recorded outcome statement tied to a meeting. It lives and
// dies independently of the transcript, except that deleting the meeting
// deletes its decisions too.
type Decision struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Owner     *string   `json:"owner,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Decision) TableName() string {
	return "decisions"
}

// NewDecision creates a new decision for a meeting
func NewDecision(meetingID uuid.UUID, text string, owner *string) *Decision {
	return &Decision{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Text:      text,
		Owner:     owner,
		CreatedAt: time.Now().UTC(),
	}
}
