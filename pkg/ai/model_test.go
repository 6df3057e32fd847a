package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	apperrors "github.com/meetnotes/meetnotes/errors"
	"github.com/meetnotes/meetnotes/pkg/config"
)

func newTestModelSummarizer(baseURL string) *ModelSummarizer {
	return NewModelSummarizer(&config.SummarizerConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
}

func TestModelSummarizer_Summarize(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Model != "test-model" {
			t.Fatalf("unexpected model %q", payload.Model)
		}

		reply := `{"bullets":["Launch moved to March"],"decisions":["Launch in March"],"action_items":["Alice drafts announcement by Friday"]}`
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": reply}},
			},
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	s := newTestModelSummarizer(ts.URL)

	result, err := s.Summarize(context.Background(), "some transcript", 5)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(result.Bullets) != 1 || result.Bullets[0] != "Launch moved to March" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestModelSummarizer_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	s := newTestModelSummarizer(ts.URL)

	_, err := s.Summarize(context.Background(), "some transcript", 5)
	if err == nil {
		t.Fatal("expected error on server failure")
	}
	var app apperrors.AppError
	if !errors.As(err, &app) || app.Code != apperrors.ErrorCode_CAPABILITY_FAILED {
		t.Fatalf("expected capability failure, got %v", err)
	}
}

func TestModelSummarizer_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	s := newTestModelSummarizer(ts.URL)

	_, err := s.Summarize(context.Background(), "some transcript", 5)
	if err == nil {
		t.Fatal("expected error on empty choices")
	}
}

func TestProbe(t *testing.T) {
	logger := zap.NewNop()

	withKey := &config.SummarizerConfig{APIKey: "key", BaseURL: "http://localhost", Model: "m"}
	if s := Probe(withKey, logger); s.Name() != "model" {
		t.Fatalf("expected model summarizer, got %q", s.Name())
	}

	withoutKey := &config.SummarizerConfig{}
	if s := Probe(withoutKey, logger); s.Name() != "heuristic" {
		t.Fatalf("expected heuristic summarizer, got %q", s.Name())
	}
}
