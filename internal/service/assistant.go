package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"promptvault-backend/internal/config"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/logger"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/gin-gonic/gin"
)

const assistantSystemPrompt = `You are an expert AI prompt engineering assistant. Your role is to help users write better prompts for AI systems like Claude, GPT, and other large language models.

Your expertise includes:
- Crafting clear, specific, and effective prompts
- Understanding prompt structure and best practices
- Explaining techniques like few-shot learning, chain-of-thought, and role prompting
- Helping debug and improve existing prompts
- Providing examples and templates for common use cases

When helping users:
- Be concise but thorough
- Provide concrete examples when helpful
- Explain the reasoning behind your suggestions
- Offer multiple approaches when appropriate

Focus on practical, actionable advice that users can immediately apply to improve their prompts.`

// AssistantService proxies prompt-engineering chat to the Anthropic Messages
// API, relaying the model output as SSE text chunks
type AssistantService struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	enabled   bool
	logger    *logger.Logger
}

// Ensure AssistantService implements AssistantServiceInterface
var _ AssistantServiceInterface = (*AssistantService)(nil)

// NewAssistantService creates a new AssistantService. Without an API key the
// service stays up but rejects chat requests.
func NewAssistantService(cfg *config.Config, log *logger.Logger) *AssistantService {
	return &AssistantService{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey)),
		model:     anthropic.Model(cfg.AssistantModel),
		maxTokens: int64(cfg.AssistantMaxTokens),
		enabled:   cfg.AnthropicAPIKey != "",
		logger:    log,
	}
}

// ChatMessage is one turn of the assistant conversation
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest is the conversation history sent to the assistant
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// chatChunk is the payload of one SSE data line
type chatChunk struct {
	Text string `json:"text"`
}

// StreamChat relays the model's reply as SSE events on the response writer:
// one "data: {\"text\": ...}" line per text delta, terminated by
// "data: [DONE]". Errors after the first byte has been flushed can only be
// logged; the client sees a truncated stream without the DONE marker.
func (s *AssistantService) StreamChat(ctx context.Context, req *ChatRequest, writer gin.ResponseWriter) error {
	if !s.enabled {
		return apperrors.ErrAssistantKeyNotSet
	}
	if len(req.Messages) == 0 {
		return apperrors.NewValidationError("messages", "at least one message is required")
	}

	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case "assistant":
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		case "user":
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			return apperrors.NewValidationError("role", fmt.Sprintf("unsupported message role: %s", msg.Role))
		}
	}

	stream := s.client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: assistantSystemPrompt},
		},
		Messages: messages,
	})
	defer stream.Close()

	flusher, ok := writer.(http.Flusher)
	if !ok {
		return fmt.Errorf("response writer does not support streaming")
	}

	writer.Header().Set("Content-Type", "text/event-stream")
	writer.Header().Set("Cache-Control", "no-cache")
	writer.Header().Set("Connection", "keep-alive")

	for stream.Next() {
		event := stream.Current()
		switch eventVariant := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch deltaVariant := eventVariant.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				payload, err := json.Marshal(chatChunk{Text: deltaVariant.Text})
				if err != nil {
					s.logger.WithField("error", err.Error()).Error("Failed to encode chat chunk")
					continue
				}
				if _, err := fmt.Fprintf(writer, "data: %s\n\n", payload); err != nil {
					return fmt.Errorf("client disconnected: %w", err)
				}
				flusher.Flush()
			}
		}
	}
	if err := stream.Err(); err != nil {
		s.logger.WithField("error", err.Error()).Error("Assistant stream failed")
		return fmt.Errorf("assistant stream failed: %w", err)
	}

	writer.Write([]byte("data: [DONE]\n\n"))
	flusher.Flush()
	return nil
}
