package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pdfchat/internal/domain"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newChatServer(t *testing.T, answer string, captured *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  captured.Model,
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": answer},
					"finish_reason": "stop",
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestChat_RequestShape(t *testing.T) {
	var captured chatRequest
	srv := newChatServer(t, "The sky is blue.", &captured)
	defer srv.Close()

	c := NewGroq(GroqConfig{BaseURL: srv.URL + "/v1", APIKey: "gsk_test"})
	history := []domain.Turn{{Question: "What is this about?", Answer: "Colors in nature."}}

	answer, err := c.Chat(context.Background(), "system prompt with context", history, "What color is the sky?")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if answer != "The sky is blue." {
		t.Errorf("answer = %q", answer)
	}

	if captured.Model != DefaultModel {
		t.Errorf("model = %q, want %q", captured.Model, DefaultModel)
	}
	if captured.Temperature < 0.09 || captured.Temperature > 0.11 {
		t.Errorf("temperature = %v, want 0.1", captured.Temperature)
	}

	// system, then one history turn (user+assistant), then the question
	roles := make([]string, len(captured.Messages))
	for i, m := range captured.Messages {
		roles[i] = m.Role
	}
	want := []string{"system", "user", "assistant", "user"}
	if len(roles) != len(want) {
		t.Fatalf("got %d messages (%v), want %d", len(roles), roles, len(want))
	}
	for i := range want {
		if roles[i] != want[i] {
			t.Errorf("message %d role = %q, want %q", i, roles[i], want[i])
		}
	}
	if got := captured.Messages[len(captured.Messages)-1].Content; got != "What color is the sky?" {
		t.Errorf("last message = %q, want the question", got)
	}
}

func TestChat_NoChoicesIsEmptyAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []any{},
		})
	}))
	defer srv.Close()

	c := NewGroq(GroqConfig{BaseURL: srv.URL + "/v1", APIKey: "gsk_test"})
	answer, err := c.Chat(context.Background(), "system", nil, "question")
	if err != nil {
		t.Fatalf("Chat() error = %v, want nil for empty response", err)
	}
	if answer != "" {
		t.Errorf("answer = %q, want empty", answer)
	}
}

func TestChat_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewGroq(GroqConfig{BaseURL: srv.URL + "/v1", APIKey: "bad"})
	if _, err := c.Chat(context.Background(), "system", nil, "question"); err == nil {
		t.Error("Chat() error = nil, want provider error")
	}
}

func TestNewGroq_Defaults(t *testing.T) {
	c := NewGroq(GroqConfig{APIKey: "gsk_test"})
	if c.model != DefaultModel {
		t.Errorf("model = %q, want %q", c.model, DefaultModel)
	}
	if c.temperature != DefaultTemperature {
		t.Errorf("temperature = %v, want %v", c.temperature, DefaultTemperature)
	}
}
