package handlers

import (
	"net/http"
	"strconv"

	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles HTTP requests for submission moderation
type AdminHandler struct {
	submissionService service.SubmissionServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(submissionService service.SubmissionServiceInterface) *AdminHandler {
	return &AdminHandler{submissionService: submissionService}
}

// ListSubmissions handles GET /admin/submissions
// @Summary List pending community submissions
// @Description Moderation queue, oldest first. Requires an owner or admin team role.
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.SubmissionListResponse "Pending submissions"
// @Failure 403 {object} map[string]interface{} "Caller may not moderate"
// @Security BearerAuth
// @Router /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	resp, err := h.submissionService.ListPending(userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ApproveSubmission handles POST /admin/submissions/:id/approve
// @Summary Approve a submission
// @Description Publishes the submission as a public community prompt
// @Tags admin
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} service.ApproveSubmissionResponse "Published prompt and updated submission"
// @Failure 403 {object} map[string]interface{} "Caller may not moderate"
// @Failure 404 {object} map[string]interface{} "Submission not found"
// @Failure 409 {object} map[string]interface{} "Submission already reviewed"
// @Security BearerAuth
// @Router /admin/submissions/{id}/approve [post]
func (h *AdminHandler) ApproveSubmission(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.submissionService.Approve(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RejectSubmission handles POST /admin/submissions/:id/reject
// @Summary Reject a submission
// @Tags admin
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} service.SubmissionResponse "Updated submission"
// @Failure 403 {object} map[string]interface{} "Caller may not moderate"
// @Failure 404 {object} map[string]interface{} "Submission not found"
// @Failure 409 {object} map[string]interface{} "Submission already reviewed"
// @Security BearerAuth
// @Router /admin/submissions/{id}/reject [post]
func (h *AdminHandler) RejectSubmission(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.submissionService.Reject(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
