package handlers

import (
	"net/http"

	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EngagementHandler handles HTTP requests for ratings and feedback
type EngagementHandler struct {
	ratingService   service.RatingServiceInterface
	feedbackService service.FeedbackServiceInterface
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(ratingService service.RatingServiceInterface, feedbackService service.FeedbackServiceInterface) *EngagementHandler {
	return &EngagementHandler{
		ratingService:   ratingService,
		feedbackService: feedbackService,
	}
}

// RatePrompt handles PUT /prompts/:id/rating
// @Summary Rate a prompt
// @Description Records a 1-5 star rating, replacing the caller's earlier rating if any, and returns the recomputed average
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body service.RatePromptRequest true "Rating value"
// @Success 200 {object} service.RatingSummaryResponse "Recomputed rating summary"
// @Failure 400 {object} map[string]interface{} "Rating out of range"
// @Failure 404 {object} map[string]interface{} "Prompt not found"
// @Security BearerAuth
// @Router /prompts/{id}/rating [put]
func (h *EngagementHandler) RatePrompt(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	promptID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.RatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.ratingService.RatePrompt(userID, promptID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitFeedback handles PUT /prompts/:id/feedback
// @Summary Submit helpful/not-helpful feedback
// @Description Records the caller's vote, replacing any earlier vote on the same prompt
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body service.SubmitFeedbackRequest true "Feedback vote"
// @Success 200 {object} service.FeedbackResponse "Recorded vote"
// @Failure 400 {object} map[string]interface{} "Missing helpful field"
// @Failure 404 {object} map[string]interface{} "Prompt not found"
// @Security BearerAuth
// @Router /prompts/{id}/feedback [put]
func (h *EngagementHandler) SubmitFeedback(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	promptID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.feedbackService.SubmitFeedback(userID, promptID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
