package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

// ParseSummaryResponse parses the JSON reply from the model into a
// SummaryResult. Models sometimes wrap the payload in markdown code fences.
func ParseSummaryResponse(content string) (*entities.SummaryResult, error) {
	content = extractJSON(content)

	var result entities.SummaryResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if result.Bullets == nil {
		return nil, fmt.Errorf("missing bullets in response")
	}
	if result.Decisions == nil {
		result.Decisions = []string{}
	}
	if result.ActionItems == nil {
		result.ActionItems = []string{}
	}

	return &result, nil
}

func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
