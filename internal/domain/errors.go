package domain

import "errors"

var (
	// ErrInvalidDocument indicates the uploaded file is not a readable PDF
	ErrInvalidDocument = errors.New("invalid or unreadable PDF document")
	// ErrNoExtractableText indicates a valid PDF with no usable text
	ErrNoExtractableText = errors.New("no text could be extracted from the PDF")
	// ErrChunkingFailed indicates text splitting produced no segments
	ErrChunkingFailed = errors.New("text splitting produced no segments")
	// ErrIndexBuildFailed indicates an embedding or vector store failure
	ErrIndexBuildFailed = errors.New("failed to build vector index")
	// ErrAnsweringFailed indicates an LLM provider failure
	ErrAnsweringFailed = errors.New("failed to generate answer")
	// ErrNoActiveSession indicates there is no session to operate on
	ErrNoActiveSession = errors.New("no active session")
)
