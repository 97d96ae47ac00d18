// Package embedding maps text to fixed-length vectors via an external
// embedding model.
package embedding

import "context"

// Embedder generates vector embeddings for text. Vectors have a fixed
// dimensionality per model and are deterministic for a fixed model.
type Embedder interface {
	// Embed generates an embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one call.
	// The result is index-aligned with the input.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
