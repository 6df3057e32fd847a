package ai

import (
	"context"
	"strings"

	"github.com/meetnotes/meetnotes/internal/domain/entities"
)

// decision and action marker words, matched case-insensitively against
// whole sentences
var (
	decisionMarkers = []string{"decided", "agreed", "decision"}
	actionMarkers   = []string{"will ", "action item", "todo", "need to", "needs to"}
)

// HeuristicSummarizer is the on-device fallback capability. It is fully
// deterministic: leading sentences become bullets, sentences carrying
// decision or action markers are classified accordingly.
type HeuristicSummarizer struct{}

// NewHeuristicSummarizer creates the heuristic capability
func NewHeuristicSummarizer() *HeuristicSummarizer {
	return &HeuristicSummarizer{}
}

// Name identifies the capability variant
func (h *HeuristicSummarizer) Name() string {
	return "heuristic"
}

// Summarize produces a structured summary without leaving the device
func (h *HeuristicSummarizer) Summarize(_ context.Context, transcript string, maxBullets int) (*entities.SummaryResult, error) {
	result := &entities.SummaryResult{
		Bullets:     []string{},
		Decisions:   []string{},
		ActionItems: []string{},
	}

	for _, sentence := range splitSentences(transcript) {
		lower := strings.ToLower(sentence)

		if len(result.Bullets) < maxBullets {
			result.Bullets = append(result.Bullets, sentence)
		}
		if containsAny(lower, decisionMarkers) {
			result.Decisions = append(result.Decisions, sentence)
		}
		if containsAny(lower, actionMarkers) {
			result.ActionItems = append(result.ActionItems, sentence)
		}
	}

	return result, nil
}

// splitSentences breaks a transcript on terminal punctuation, trimming
// whitespace and dropping empty fragments
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	return sentences
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
