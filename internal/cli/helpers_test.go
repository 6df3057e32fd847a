package cli

import (
	"testing"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

func TestParseAttendees(t *testing.T) {
	got := parseAttendees([]string{"Alice <alice@example.com>", "Bob", "  ", "Carol <carol@example.com>"})

	want := []entities.Attendee{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob"},
		{Name: "Carol", Email: "carol@example.com"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d attendees, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("attendee %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
