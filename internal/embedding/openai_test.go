package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type embeddingsRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, req embeddingsRequest)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/embeddings" {
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		var req embeddingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		handler(w, req)
	}))
}

func TestEmbedBatch(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, req embeddingsRequest) {
		if req.Model != "all-minilm" {
			t.Errorf("model = %q, want all-minilm", req.Model)
		}
		if len(req.Input) != 2 {
			t.Errorf("input length = %d, want 2", len(req.Input))
		}
		// Out-of-order entries must be re-aligned by index.
		resp := map[string]any{
			"object": "list",
			"data": []map[string]any{
				{"object": "embedding", "index": 1, "embedding": []float32{0, 1}},
				{"object": "embedding", "index": 0, "embedding": []float32{1, 0}},
			},
			"model": req.Model,
		}
		json.NewEncoder(w).Encode(resp)
	})
	defer srv.Close()

	e := NewOpenAI(OpenAIConfig{BaseURL: srv.URL + "/v1", APIKey: "test", Model: "all-minilm"})
	vectors, err := e.EmbedBatch(context.Background(), []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("EmbedBatch() error = %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vectors))
	}
	if vectors[0][0] != 1 || vectors[1][1] != 1 {
		t.Errorf("vectors not aligned by index: %v", vectors)
	}
}

func TestEmbedBatch_Empty(t *testing.T) {
	e := NewOpenAI(OpenAIConfig{BaseURL: "http://localhost:0/v1", Model: "all-minilm"})
	vectors, err := e.EmbedBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("EmbedBatch(nil) error = %v", err)
	}
	if vectors != nil {
		t.Errorf("EmbedBatch(nil) = %v, want nil", vectors)
	}
}

func TestEmbedBatch_CountMismatch(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, req embeddingsRequest) {
		resp := map[string]any{
			"object": "list",
			"data": []map[string]any{
				{"object": "embedding", "index": 0, "embedding": []float32{1, 0}},
			},
			"model": req.Model,
		}
		json.NewEncoder(w).Encode(resp)
	})
	defer srv.Close()

	e := NewOpenAI(OpenAIConfig{BaseURL: srv.URL + "/v1", APIKey: "test", Model: "all-minilm"})
	if _, err := e.EmbedBatch(context.Background(), []string{"alpha", "beta"}); err == nil {
		t.Error("EmbedBatch() error = nil, want count mismatch error")
	}
}

func TestEmbed_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limit"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	e := NewOpenAI(OpenAIConfig{BaseURL: srv.URL + "/v1", APIKey: "test", Model: "all-minilm"})
	if _, err := e.Embed(context.Background(), "alpha"); err == nil {
		t.Error("Embed() error = nil, want provider error")
	}
}
