package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/meetnotes/meetnotes/errors"
	"github.com/meetnotes/meetnotes/internal/domain/entities"
	"github.com/meetnotes/meetnotes/internal/usecase/summary"
)

// Format selects the export rendering
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Exporter renders a (meeting, summary) pair into a file. File names are
// deterministic from the meeting id and format.
type Exporter struct {
	logger *zap.Logger
}

// NewExporter creates a new exporter
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// ExportDocument is the structured export payload. Field names are part of
// the export contract.
type ExportDocument struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	CreatedAt time.Time              `json:"created_at"`
	EndedAt   *time.Time             `json:"ended_at,omitempty"`
	Attendees []entities.Attendee    `json:"attendees,omitempty"`
	Summary   entities.SummaryResult `json:"summary"`
}

// Export writes the rendered file into destDir and returns its path.
// Recorded decisions are rendered in the Markdown format only, with their
// owner when present; the JSON format stays a direct serialization of the
// meeting fields and summary. Write failures surface unchanged.
func (e *Exporter) Export(meeting *entities.Meeting, result *entities.SummaryResult, decisions []*entities.Decision, destDir string, format Format) (string, error) {
	if meeting == nil || result == nil {
		return "", apperrors.ErrInvalidArgument("meeting and summary are required")
	}

	var content []byte
	var ext string
	switch format {
	case FormatMarkdown:
		content = []byte(e.renderMarkdown(meeting, result, decisions))
		ext = "md"
	case FormatJSON:
		b, err := e.renderJSON(meeting, result)
		if err != nil {
			return "", err
		}
		content = b
		ext = "json"
	default:
		return "", apperrors.ErrInvalidArgument(fmt.Sprintf("unsupported export format %q", format))
	}

	path := filepath.Join(destDir, fmt.Sprintf("meeting-%s.%s", meeting.ID, ext))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", apperrors.ErrExportFailed(string(format), err)
	}

	e.logger.Info("meeting exported",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("format", string(format)),
		zap.String("path", path),
	)

	return path, nil
}

func (e *Exporter) renderMarkdown(meeting *entities.Meeting, result *entities.SummaryResult, decisions []*entities.Decision) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", meeting.Title)
	fmt.Fprintf(&b, "Started: %s\n", meeting.CreatedAt.Format(time.RFC3339))
	if meeting.EndedAt != nil {
		fmt.Fprintf(&b, "Ended: %s\n", meeting.EndedAt.Format(time.RFC3339))
	} else {
		b.WriteString("Ended: in progress\n")
	}

	if len(meeting.Attendees) > 0 {
		b.WriteString("\n## Attendees\n\n")
		for _, a := range meeting.Attendees {
			if a.Email != "" {
				fmt.Fprintf(&b, "- %s <%s>\n", a.Name, a.Email)
			} else {
				fmt.Fprintf(&b, "- %s\n", a.Name)
			}
		}
	}

	b.WriteString("\n## Summary\n\n")
	for _, bullet := range result.Bullets {
		fmt.Fprintf(&b, "- %s\n", bullet)
	}

	if len(result.Decisions) > 0 || len(decisions) > 0 {
		b.WriteString("\n## Decisions\n\n")
		for _, d := range result.Decisions {
			fmt.Fprintf(&b, "- %s\n", d)
		}
		for _, d := range decisions {
			if d.Owner != nil && *d.Owner != "" {
				fmt.Fprintf(&b, "- %s (owner: %s)\n", d.Text, *d.Owner)
			} else {
				fmt.Fprintf(&b, "- %s\n", d.Text)
			}
		}
	}

	if len(result.ActionItems) > 0 {
		b.WriteString("\n## Action Items\n\n")
		for _, raw := range result.ActionItems {
			item := summary.ParseActionItem(raw)
			if item.DueDate != "" {
				fmt.Fprintf(&b, "- %s (due %s)\n", item.Body, item.DueDate)
			} else {
				fmt.Fprintf(&b, "- %s\n", item.Body)
			}
		}
	}

	return b.String()
}

func (e *Exporter) renderJSON(meeting *entities.Meeting, result *entities.SummaryResult) ([]byte, error) {
	doc := ExportDocument{
		ID:        meeting.ID.String(),
		Title:     meeting.Title,
		CreatedAt: meeting.CreatedAt,
		EndedAt:   meeting.EndedAt,
		Attendees: meeting.Attendees,
		Summary:   *result,
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, apperrors.ErrSerializationFailed("export document", err)
	}
	return b, nil
}
