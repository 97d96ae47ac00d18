// Package llm wraps the chat-completion provider used by the answering
// pipeline.
package llm

import (
	"context"

	"pdfchat/internal/domain"
)

// Client produces a chat completion for a question, given the QA system
// prompt and the accumulated conversation history. An empty answer is a
// valid outcome and is returned without error; errors mean the provider
// call itself failed.
type Client interface {
	Chat(ctx context.Context, system string, history []domain.Turn, question string) (string, error)
}
