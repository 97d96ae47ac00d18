package domain

// AskRequest is the request to ask a question about the current document
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskResponse is the response to a question
type AskResponse struct {
	Answer string `json:"answer"`
}

// MessageResponse carries a human-readable status message
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service status and the current document, if any
type HealthResponse struct {
	Status     string      `json:"status"`
	Generation *Generation `json:"generation,omitempty"`
}
