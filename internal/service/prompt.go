package service

import (
	"fmt"
	"strings"

	"pdfchat/internal/vectorindex"
)

// qaPromptTemplate instructs the model to answer strictly from the
// retrieved context and to say so explicitly when the answer is not in
// it. This wording is a behavioral contract, not a suggestion.
const qaPromptTemplate = `You are a helpful AI assistant designed to answer questions based on the provided context.
Use only the following pieces of context to answer the question at the end.
If the context does not contain the answer to the question, explicitly state that the information is not available in the provided document.
Do not make up an answer or use external knowledge.
Answer concisely and directly.

Context:
%s`

func qaPrompt(results []vectorindex.Result) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Content
	}
	return fmt.Sprintf(qaPromptTemplate, strings.Join(parts, "\n\n"))
}
