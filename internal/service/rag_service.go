package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pdfchat/internal/domain"
	"pdfchat/internal/embedding"
	"pdfchat/internal/llm"
	"pdfchat/internal/vectorindex"
)

const (
	// NoDocumentMessage is returned for questions asked before any
	// document has been processed. Returning it instead of an error
	// spares the transport layer from special-casing that state.
	NoDocumentMessage = "Error: Please upload and process a PDF first."

	// FallbackAnswer stands in for an empty LLM response.
	FallbackAnswer = "Sorry, I couldn't generate an answer based on the provided document."
)

// Extractor turns uploaded file bytes into normalized document text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// Splitter cuts normalized text into overlapping segments.
type Splitter interface {
	Split(text string) []string
}

// RagService owns the single live document generation and conversation
// session. All mutation happens via atomic swap after the replacement
// has been fully constructed, so a failed ingestion never disturbs the
// current generation.
type RagService struct {
	logger    *zap.Logger
	extractor Extractor
	splitter  Splitter
	embedder  embedding.Embedder
	builder   vectorindex.Builder
	llm       llm.Client
	topK      int

	mu      sync.RWMutex
	session *session
}

// session binds one document generation's retriever to the LLM turn
// history. It is replaced wholesale on re-upload.
type session struct {
	generation domain.Generation
	index      vectorindex.Index
	history    []domain.Turn
}

// NewRagService creates a new RAG service
func NewRagService(
	logger *zap.Logger,
	extractor Extractor,
	splitter Splitter,
	embedder embedding.Embedder,
	builder vectorindex.Builder,
	llmClient llm.Client,
	topK int,
) *RagService {
	if topK <= 0 {
		topK = 3
	}
	return &RagService{
		logger:    logger,
		extractor: extractor,
		splitter:  splitter,
		embedder:  embedder,
		builder:   builder,
		llm:       llmClient,
		topK:      topK,
	}
}

// ProcessDocument runs the full ingestion pipeline: extract, chunk,
// embed, index. On success the new generation and a fresh session
// replace the current ones; on any failure the prior generation remains
// untouched and usable.
func (s *RagService) ProcessDocument(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: uploaded file is empty", domain.ErrInvalidDocument)
	}

	text, err := s.extractor.Extract(data)
	if err != nil {
		s.logger.Error("extraction failed", zap.String("filename", filename), zap.Error(err))
		return "", err
	}

	segments := s.splitter.Split(text)
	if len(segments) == 0 {
		return "", fmt.Errorf("%w: check PDF content", domain.ErrChunkingFailed)
	}

	vectors, err := s.embedder.EmbedBatch(ctx, segments)
	if err != nil {
		s.logger.Error("embedding failed", zap.String("filename", filename), zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrIndexBuildFailed, err)
	}

	index, err := s.builder.Build(ctx, segments, vectors)
	if err != nil {
		s.logger.Error("index build failed", zap.String("filename", filename), zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrIndexBuildFailed, err)
	}

	generation := domain.Generation{
		ID:        uuid.NewString(),
		Filename:  filename,
		Segments:  len(segments),
		CreatedAt: time.Now(),
	}
	next := &session{generation: generation, index: index}

	s.mu.Lock()
	s.session = next
	s.mu.Unlock()

	s.logger.Info("document processed",
		zap.String("generation", generation.ID),
		zap.String("filename", filename),
		zap.Int("segments", len(segments)),
	)
	return fmt.Sprintf("PDF %q processed. Ready for questions.", filename), nil
}

// AnswerQuestion retrieves the most relevant segments for the question,
// asks the LLM with the accumulated history and records the new turn.
// With no document processed it returns NoDocumentMessage; an empty LLM
// answer becomes FallbackAnswer. Only provider failures are errors.
func (s *RagService) AnswerQuestion(ctx context.Context, question string) (string, error) {
	s.mu.RLock()
	sess := s.session
	var history []domain.Turn
	if sess != nil {
		history = append(history, sess.history...)
	}
	s.mu.RUnlock()

	if sess == nil {
		return NoDocumentMessage, nil
	}

	queryVector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		s.logger.Error("query embedding failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrAnsweringFailed, err)
	}

	results, err := sess.index.Search(ctx, queryVector, s.topK)
	if err != nil {
		s.logger.Error("retrieval failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrAnsweringFailed, err)
	}

	answer, err := s.llm.Chat(ctx, qaPrompt(results), history, question)
	if err != nil {
		s.logger.Error("llm call failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrAnsweringFailed, err)
	}
	if strings.TrimSpace(answer) == "" {
		answer = FallbackAnswer
	}

	// A re-upload may have replaced the session while the provider
	// calls were running. The answer still reflects the generation it
	// was asked against, but its turn is dropped so the new session
	// starts with no inherited history.
	s.mu.Lock()
	if s.session == sess {
		sess.history = append(sess.history, domain.Turn{Question: question, Answer: answer})
	}
	s.mu.Unlock()

	return answer, nil
}

// ClearHistory empties the conversation history, keeping the retriever
// and LLM bindings. It reports false when there is no active session;
// the transport layer decides what status that maps to.
func (s *RagService) ClearHistory() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		s.logger.Info("clear requested with no active session")
		return false
	}
	s.session.history = nil
	s.logger.Info("conversation history cleared",
		zap.String("generation", s.session.generation.ID))
	return true
}

// CurrentGeneration returns the live document generation, if any.
func (s *RagService) CurrentGeneration() (domain.Generation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return domain.Generation{}, false
	}
	return s.session.generation, true
}

// HistoryLen reports the number of recorded turns.
func (s *RagService) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return 0
	}
	return len(s.session.history)
}
