// Package vectorindex stores embedded text segments for one document
// generation and serves similarity search over them.
package vectorindex

import "context"

// Result is one retrieved segment, most similar first.
type Result struct {
	Content    string
	Similarity float32
}

// Index is a similarity-searchable set of embedded segments belonging
// to a single document generation.
type Index interface {
	// Search returns the topK segments most similar to the query
	// vector, ordered by descending similarity.
	Search(ctx context.Context, vector []float32, topK int) ([]Result, error)
}

// Builder creates a fresh index for a new document generation,
// replacing whatever it built before. The previous index stays usable
// through handles already held.
type Builder interface {
	Build(ctx context.Context, segments []string, vectors [][]float32) (Index, error)
}
