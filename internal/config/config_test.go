package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.LLM.Model != "llama3-70b-8192" {
		t.Errorf("LLM.Model = %q, want llama3-70b-8192", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("LLM.BaseURL = %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Temperature != 0.1 {
		t.Errorf("LLM.Temperature = %v, want 0.1", cfg.LLM.Temperature)
	}
	if cfg.RAG.ChunkSize != 1000 || cfg.RAG.ChunkOverlap != 150 || cfg.RAG.TopK != 3 {
		t.Errorf("RAG defaults = %+v, want 1000/150/3", cfg.RAG)
	}
	if cfg.Upload.MaxSizeMB != 20 {
		t.Errorf("Upload.MaxSizeMB = %d, want 20", cfg.Upload.MaxSizeMB)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("server:\n  port: 9000\nrag:\n  chunk_size: 500\n  chunk_overlap: 50\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.RAG.ChunkSize != 500 || cfg.RAG.ChunkOverlap != 50 {
		t.Errorf("RAG = %+v, want 500/50", cfg.RAG)
	}
	// Untouched keys keep their defaults
	if cfg.RAG.TopK != 3 {
		t.Errorf("RAG.TopK = %d, want default 3", cfg.RAG.TopK)
	}
}

func TestLoad_GroqEnvAlias(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test123")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.APIKey != "gsk_test123" {
		t.Errorf("LLM.APIKey = %q, want value of GROQ_API_KEY", cfg.LLM.APIKey)
	}
}

func TestAddress(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "127.0.0.1", Port: 8000}}
	if got := cfg.Address(); got != "127.0.0.1:8000" {
		t.Errorf("Address() = %q", got)
	}
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := &Config{Upload: UploadConfig{MaxSizeMB: 20}}
	if got := cfg.MaxUploadBytes(); got != 20<<20 {
		t.Errorf("MaxUploadBytes() = %d, want %d", got, 20<<20)
	}
}
