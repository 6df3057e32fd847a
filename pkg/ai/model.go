package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/meetnotes/meetnotes/errors"
	"github.com/meetnotes/meetnotes/internal/domain/entities"
	"github.com/meetnotes/meetnotes/pkg/config"
)

const summaryPromptTemplate = `Summarize the following meeting transcript as JSON with exactly these keys:
"bullets" (at most %d short bullet points), "decisions" (decisions that were made), "action_items" (tasks someone committed to).
Return only the JSON object.

Transcript:

%s`

// ModelSummarizer calls an OpenAI-compatible chat completion endpoint and
// parses the structured summary out of the assistant reply. Failures are
// returned tagged and are never retried here.
type ModelSummarizer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewModelSummarizer creates a model-backed capability from config
func NewModelSummarizer(cfg *config.SummarizerConfig) *ModelSummarizer {
	return &ModelSummarizer{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name identifies the capability variant
func (m *ModelSummarizer) Name() string {
	return "model"
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string      `json:"model,omitempty"`
	Messages    interface{} `json:"messages,omitempty"`
	Temperature float64     `json:"temperature,omitempty"`
	MaxTokens   int         `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize sends the transcript to the model endpoint and parses the reply
func (m *ModelSummarizer) Summarize(ctx context.Context, transcript string, maxBullets int) (*entities.SummaryResult, error) {
	prompt := fmt.Sprintf(summaryPromptTemplate, maxBullets, transcript)

	reqBody := ChatRequest{
		Model:       m.model,
		Messages:    []map[string]string{{"role": "user", "content": prompt}},
		Temperature: 0.3,
		MaxTokens:   8000,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, apperrors.ErrCapabilityFailed("model summarizer", err)
	}

	endpoint := m.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, apperrors.ErrCapabilityFailed("model summarizer", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrCapabilityFailed("model summarizer", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, apperrors.ErrCapabilityFailed("model summarizer",
			fmt.Errorf("endpoint returned status %d", resp.StatusCode))
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, apperrors.ErrCapabilityFailed("model summarizer", err)
	}
	if len(cr.Choices) == 0 {
		return nil, apperrors.ErrCapabilityFailed("model summarizer",
			fmt.Errorf("empty response from model"))
	}

	result, err := ParseSummaryResponse(cr.Choices[0].Message.Content)
	if err != nil {
		return nil, apperrors.ErrCapabilityFailed("model summarizer", err)
	}
	return result, nil
}
