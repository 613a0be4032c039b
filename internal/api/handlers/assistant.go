package handlers

import (
	"net/http"

	"promptvault-backend/internal/logger"
	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssistantHandler handles HTTP requests for the chat assistant
type AssistantHandler struct {
	assistantService service.AssistantServiceInterface
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService service.AssistantServiceInterface) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// Chat handles POST /assistant/chat
// @Summary Chat with the prompt-engineering assistant
// @Description Streams the assistant reply as Server-Sent Events: data lines with {"text": ...} chunks, terminated by [DONE]
// @Tags assistant
// @Accept json
// @Produce text/event-stream
// @Param request body service.ChatRequest true "Conversation history"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 503 {object} map[string]interface{} "Assistant not configured"
// @Security BearerAuth
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req service.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.assistantService.StreamChat(c.Request.Context(), &req, c.Writer); err != nil {
		// Once streaming has started the status line is gone; only report
		// errors that happen before the first write.
		if !c.Writer.Written() {
			respondError(c, err)
			return
		}
		logger.FromGinContext(c).WithField("error", err.Error()).Warn("Assistant stream ended early")
	}
}
