package entities

// SummaryResult is the structured output of the summarization capability.
// It round-trips through encoding/json; the cache pipeline persists the
// marshaled form on the meeting record.
type SummaryResult struct {
	Bullets     []string `json:"bullets"`
	Decisions   []string `json:"decisions"`
	ActionItems []string `json:"action_items"`
}
