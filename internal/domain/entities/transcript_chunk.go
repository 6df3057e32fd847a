package entities

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptChunk is one ordered fragment of a meeting's transcript.
// Chunks are immutable once stored; they go away only when the owning
// meeting is deleted. The sequence index is caller-assigned and the store
// does not renumber or reject duplicates.
type TranscriptChunk struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	MeetingID   uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Index       int       `json:"index" gorm:"column:idx;not null" validate:"gte=0"`
	Text        string    `json:"text" gorm:"type:text"`
	StartOffset float64   `json:"start_offset" validate:"gte=0"`
	EndOffset   float64   `json:"end_offset" validate:"gtefield=StartOffset"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (TranscriptChunk) TableName() string {
	return "transcript_chunks"
}

// NewTranscriptChunk creates a new transcript chunk
func NewTranscriptChunk(meetingID uuid.UUID, index int, text string, startOffset, endOffset float64) *TranscriptChunk {
	return &TranscriptChunk{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Index:       index,
		Text:        text,
		StartOffset: startOffset,
		EndOffset:   endOffset,
		CreatedAt:   time.Now().UTC(),
	}
}
