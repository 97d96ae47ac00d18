package api

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"pdfchat/internal/domain"
	"pdfchat/internal/service"
)

// Handler handles the document QA API requests
type Handler struct {
	rag            *service.RagService
	maxUploadBytes int64
}

// NewHandler creates a new handler
func NewHandler(rag *service.RagService, maxUploadBytes int64) *Handler {
	return &Handler{rag: rag, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes registers the QA routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/upload_pdf", h.UploadPDF)
	r.POST("/ask_question", h.AskQuestion)
	r.POST("/clear_chat", h.ClearChat)
}

// UploadPDF accepts a multipart PDF upload and runs the ingestion
// pipeline, replacing any previously processed document.
func (h *Handler) UploadPDF(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Please upload a PDF file."})
		return
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && ct != "application/pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid MIME type. Please upload a PDF file."})
		return
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Uploaded file is too large."})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is empty."})
		return
	}

	message, err := h.rag.ProcessDocument(c.Request.Context(), data, file.Filename)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDocument),
			errors.Is(err, domain.ErrNoExtractableText),
			errors.Is(err, domain.ErrChunkingFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, domain.MessageResponse{Message: message})
}

// AskQuestion answers a question about the currently processed document
func (h *Handler) AskQuestion(c *gin.Context) {
	var req domain.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question cannot be empty."})
		return
	}

	answer, err := h.rag.AnswerQuestion(c.Request.Context(), req.Question)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain.AskResponse{Answer: answer})
}

// ClearChat empties the conversation history. With no active session
// the service reports false, which maps to a conflict here.
func (h *Handler) ClearChat(c *gin.Context) {
	if !h.rag.ClearHistory() {
		c.JSON(http.StatusConflict, gin.H{"error": "Could not clear chat history or no active session."})
		return
	}
	c.JSON(http.StatusOK, domain.MessageResponse{Message: "Chat history cleared successfully."})
}
