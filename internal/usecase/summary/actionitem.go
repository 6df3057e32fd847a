package summary

import (
	"regexp"
	"strings"
)

// ActionItem is an action-item string split into its body and an optional
// trailing due-date fragment.
type ActionItem struct {
	Body    string
	DueDate string
}

// Due-date patterns: a marker word followed by a date-like token, i.e. a
// word optionally followed by a one-or-two-digit number ("Friday",
// "Dec 15"). The "by" pattern takes priority over "due"; within a pattern
// only the first match counts.
var dueDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bby\s+(\p{L}+(?:\s+\d{1,2})?)`),
	regexp.MustCompile(`(?i)\bdue\s+(\p{L}+(?:\s+\d{1,2})?)`),
}

// ParseActionItem extracts a trailing due-date phrase from an action-item
// string. Deterministic and side-effect-free. When no pattern matches, the
// body is the original text unchanged and DueDate is empty.
func ParseActionItem(text string) ActionItem {
	for _, pattern := range dueDatePatterns {
		loc := pattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		return ActionItem{
			Body:    strings.TrimSpace(text[:loc[0]]),
			DueDate: strings.TrimSpace(text[loc[2]:loc[3]]),
		}
	}
	return ActionItem{Body: text}
}
