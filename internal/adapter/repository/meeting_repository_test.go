package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

func TestMeetingRepository_CreateAndFindByID(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))
	ctx := context.Background()

	attendees := []entities.Attendee{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob"},
		{Name: "Carol", Email: "carol@example.com"},
	}
	meeting := entities.NewMeeting("Weekly Sync", attendees)
	if err := repo.Create(ctx, meeting); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByID(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("expected meeting, got nil")
	}
	if got.Title != "Weekly Sync" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if !got.IsActive() {
		t.Fatal("new meeting should be active")
	}
	if len(got.Attendees) != len(attendees) {
		t.Fatalf("expected %d attendees, got %d", len(attendees), len(got.Attendees))
	}
	for i, a := range attendees {
		if got.Attendees[i] != a {
			t.Fatalf("attendee %d: expected %+v, got %+v", i, a, got.Attendees[i])
		}
	}
}

func TestMeetingRepository_FindByID_NotFound(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))

	got, err := repo.FindByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing meeting, got %+v", got)
	}
}

func TestMeetingRepository_FindAll_ActiveOnly(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))
	ctx := context.Background()

	titles := []string{"First", "Second", "Third", "Fourth"}
	meetings := make([]*entities.Meeting, 0, len(titles))
	for _, title := range titles {
		m := entities.NewMeeting(title, nil)
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
		meetings = append(meetings, m)
	}

	// End the second and fourth meetings
	for _, i := range []int{1, 3} {
		if err := repo.EndMeeting(ctx, meetings[i]); err != nil {
			t.Fatalf("end: %v", err)
		}
	}

	all, err := repo.FindAll(ctx, false)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 meetings, got %d", len(all))
	}
	for i, m := range all {
		if m.Title != titles[i] {
			t.Fatalf("position %d: expected %q, got %q", i, titles[i], m.Title)
		}
	}

	active, err := repo.FindAll(ctx, true)
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active meetings, got %d", len(active))
	}
	if active[0].Title != "First" || active[1].Title != "Third" {
		t.Fatalf("unexpected active meetings: %q, %q", active[0].Title, active[1].Title)
	}
}

func TestMeetingRepository_Search(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"Project Alpha Meeting", "Team Standup", "Project Beta Review"} {
		if err := repo.Create(ctx, entities.NewMeeting(title, nil)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.Search(ctx, "Project")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Title != "Project Alpha Meeting" || got[1].Title != "Project Beta Review" {
		t.Fatalf("unexpected matches: %q, %q", got[0].Title, got[1].Title)
	}

	// Case-sensitive: lowercase query matches nothing
	none, err := repo.Search(ctx, "project")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches for lowercase query, got %d", len(none))
	}
}

func TestMeetingRepository_Update(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))
	ctx := context.Background()

	meeting := entities.NewMeeting("Before", nil)
	if err := repo.Create(ctx, meeting); err != nil {
		t.Fatalf("create: %v", err)
	}

	meeting.Title = "After"
	if err := repo.Update(ctx, meeting); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.FindByID(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Title != "After" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}
}

func TestMeetingRepository_Update_NotFound(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))

	err := repo.Update(context.Background(), entities.NewMeeting("Ghost", nil))
	if !errors.Is(err, entities.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestMeetingRepository_EndMeeting_Idempotent(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))
	ctx := context.Background()

	meeting := entities.NewMeeting("Sync", nil)
	if err := repo.Create(ctx, meeting); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.EndMeeting(ctx, meeting); err != nil {
		t.Fatalf("end: %v", err)
	}
	first, err := repo.FindByID(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if first.EndedAt == nil {
		t.Fatal("expected end timestamp to be set")
	}

	// Ending again must not error and must not move the timestamp
	if err := repo.EndMeeting(ctx, first); err != nil {
		t.Fatalf("second end: %v", err)
	}
	second, err := repo.FindByID(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !second.EndedAt.Equal(*first.EndedAt) {
		t.Fatalf("end timestamp moved: %v -> %v", first.EndedAt, second.EndedAt)
	}
}

func TestMeetingRepository_FindActive(t *testing.T) {
	repo := NewMeetingRepository(newTestDB(t))
	ctx := context.Background()

	// Zero-active branch
	got, err := repo.FindActive(ctx)
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil with no meetings, got %+v", got)
	}

	ended := entities.NewMeeting("Done", nil)
	if err := repo.Create(ctx, ended); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.EndMeeting(ctx, ended); err != nil {
		t.Fatalf("end: %v", err)
	}

	got, err = repo.FindActive(ctx)
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil with only ended meetings, got %+v", got)
	}

	// One-active branch
	active := entities.NewMeeting("Ongoing", nil)
	if err := repo.Create(ctx, active); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err = repo.FindActive(ctx)
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if got == nil || got.ID != active.ID {
		t.Fatalf("expected meeting %s, got %+v", active.ID, got)
	}
}

func TestMeetingRepository_Delete_Cascades(t *testing.T) {
	db := newTestDB(t)
	meetings := NewMeetingRepository(db)
	transcripts := NewTranscriptRepository(db)
	decisions := NewDecisionRepository(db)
	ctx := context.Background()

	meeting := entities.NewMeeting("Doomed", nil)
	if err := meetings.Create(ctx, meeting); err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 3; i++ {
		chunk := entities.NewTranscriptChunk(meeting.ID, i, "text", float64(i), float64(i+1))
		if err := transcripts.Add(ctx, chunk); err != nil {
			t.Fatalf("add chunk: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := decisions.Add(ctx, meeting.ID, "decision", nil); err != nil {
			t.Fatalf("add decision: %v", err)
		}
	}

	if err := meetings.Delete(ctx, meeting); err != nil {
		t.Fatalf("delete: %v", err)
	}

	gotMeeting, err := meetings.FindByID(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if gotMeeting != nil {
		t.Fatal("meeting still present after delete")
	}

	gotChunks, err := transcripts.FindByMeetingID(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("find chunks: %v", err)
	}
	if len(gotChunks) != 0 {
		t.Fatalf("expected no chunks after cascade, got %d", len(gotChunks))
	}

	gotDecisions, err := decisions.FindByMeetingID(ctx, meeting.ID)
	if err != nil {
		t.Fatalf("find decisions: %v", err)
	}
	if len(gotDecisions) != 0 {
		t.Fatalf("expected no decisions after cascade, got %d", len(gotDecisions))
	}
}
