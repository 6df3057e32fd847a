package entities

import "errors"

// Domain errors
var (
	// Meeting errors
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrNoActiveMeeting  = errors.New("no active meeting")
	ErrInvalidMeetingID = errors.New("invalid meeting id")

	// Transcript errors
	ErrChunkNotFound = errors.New("transcript chunk not found")
	ErrInvalidChunk  = errors.New("invalid transcript chunk")

	// Decision errors
	ErrDecisionNotFound = errors.New("decision not found")
)
