package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

// resolveMeeting resolves "a given id or the active meeting". An explicit
// id wins; with no id the single active meeting is looked up. A missing
// meeting is reported as a friendly message, not a raw error.
func resolveMeeting(ctx context.Context, deps *Dependencies, idArg string) (*entities.Meeting, error) {
	if idArg != "" {
		id, err := uuid.Parse(idArg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", entities.ErrInvalidMeetingID, idArg)
		}
		meeting, err := deps.Meetings.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if meeting == nil {
			return nil, fmt.Errorf("no meeting found with id %s", id)
		}
		return meeting, nil
	}

	meeting, err := deps.Meetings.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, fmt.Errorf("no active meeting found")
	}
	return meeting, nil
}

// parseAttendees turns "Name <email>" or plain "Name" arguments into the
// ordered attendee list
func parseAttendees(values []string) []entities.Attendee {
	attendees := make([]entities.Attendee, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if open := strings.LastIndex(v, "<"); open != -1 && strings.HasSuffix(v, ">") {
			attendees = append(attendees, entities.Attendee{
				Name:  strings.TrimSpace(v[:open]),
				Email: strings.TrimSpace(v[open+1 : len(v)-1]),
			})
			continue
		}
		attendees = append(attendees, entities.Attendee{Name: v})
	}
	return attendees
}

// formatMeetingLine renders one meeting for list output
func formatMeetingLine(m *entities.Meeting) string {
	status := "ended"
	if m.IsActive() {
		status = "active"
	}
	return fmt.Sprintf("%s  %-8s %s", m.ID, status, m.Title)
}
