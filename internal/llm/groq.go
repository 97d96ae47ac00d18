package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"pdfchat/internal/domain"
)

const (
	// DefaultBaseURL is Groq's OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	// DefaultModel is the chat model used for answering
	DefaultModel = "llama3-70b-8192"
	// DefaultTemperature keeps answers close to deterministic
	DefaultTemperature = 0.1
)

// GroqConfig configures the Groq chat-completion client
type GroqConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
}

// GroqClient is a Client backed by Groq's OpenAI-compatible API.
type GroqClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewGroq creates a new Groq client
func NewGroq(cfg GroqConfig) *GroqClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	return &GroqClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Chat sends the system prompt, history and question as a chat
// completion and returns the model's answer text.
func (c *GroqClient) Chat(ctx context.Context, system string, history []domain.Turn, question string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2*len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range history {
		messages = append(messages,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: turn.Question},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: turn.Answer},
		)
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: question,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		// No choices is treated like an empty answer, not a failure.
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
