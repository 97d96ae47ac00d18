package vectorindex

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/philippgille/chromem-go"
)

// ChromemBuilder builds in-memory chromem collections. Each build gets
// a fresh uniquely-named collection so it can never collide with a
// previous generation's, and the superseded collection is dropped from
// the registry.
type ChromemBuilder struct {
	db *chromem.DB

	mu   sync.Mutex
	last string
}

// NewChromemBuilder creates a builder over a fresh in-memory database
func NewChromemBuilder() *ChromemBuilder {
	return &ChromemBuilder{db: chromem.NewDB()}
}

// Build creates a new collection holding the segments and their
// embeddings. segments and vectors must be index-aligned and non-empty.
func (b *ChromemBuilder) Build(ctx context.Context, segments []string, vectors [][]float32) (Index, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments to index")
	}
	if len(segments) != len(vectors) {
		return nil, fmt.Errorf("segments and vectors length mismatch: %d vs %d", len(segments), len(vectors))
	}

	name := "pdf_collection_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	collection, err := b.db.CreateCollection(name, map[string]string{"hnsw:space": "cosine"}, nil)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	ids := make([]string, len(segments))
	metadatas := make([]map[string]string, len(segments))
	for i := range segments {
		ids[i] = strconv.Itoa(i)
		metadatas[i] = map[string]string{"position": strconv.Itoa(i)}
	}
	if err := collection.Add(ctx, ids, vectors, metadatas, segments); err != nil {
		_ = b.db.DeleteCollection(name)
		return nil, fmt.Errorf("add segments: %w", err)
	}

	b.mu.Lock()
	if b.last != "" {
		// Drop the superseded generation's collection from the
		// registry; handles already held keep working.
		_ = b.db.DeleteCollection(b.last)
	}
	b.last = name
	b.mu.Unlock()

	return &chromemIndex{collection: collection}, nil
}

type chromemIndex struct {
	collection *chromem.Collection
}

func (i *chromemIndex) Search(ctx context.Context, vector []float32, topK int) ([]Result, error) {
	if n := i.collection.Count(); topK > n {
		topK = n
	}
	if topK <= 0 {
		return nil, nil
	}

	found, err := i.collection.QueryEmbedding(ctx, vector, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}

	results := make([]Result, len(found))
	for j, r := range found {
		results[j] = Result{Content: r.Content, Similarity: r.Similarity}
	}
	return results, nil
}
