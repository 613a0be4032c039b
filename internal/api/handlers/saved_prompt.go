package handlers

import (
	"net/http"

	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SavedPromptHandler handles HTTP requests for saved prompt operations
type SavedPromptHandler struct {
	savedService service.SavedPromptServiceInterface
}

// NewSavedPromptHandler creates a new saved prompt handler
func NewSavedPromptHandler(savedService service.SavedPromptServiceInterface) *SavedPromptHandler {
	return &SavedPromptHandler{savedService: savedService}
}

// ListSavedPrompts handles GET /saved-prompts
// @Summary List the caller's saved prompts
// @Tags saved-prompts
// @Produce json
// @Success 200 {array} service.SavedPromptResponse "Saved prompts, newest first"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /saved-prompts [get]
func (h *SavedPromptHandler) ListSavedPrompts(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	resp, err := h.savedService.GetSavedPrompts(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SavePrompt handles POST /saved-prompts
// @Summary Save a prompt
// @Description Bookmarks a prompt for the caller, optionally into a folder
// @Tags saved-prompts
// @Accept json
// @Produce json
// @Param request body service.SavePromptRequest true "Prompt to save"
// @Success 201 {object} service.SavedPromptResponse "Saved prompt"
// @Failure 404 {object} map[string]interface{} "Prompt not found"
// @Failure 409 {object} map[string]interface{} "Prompt already saved"
// @Security BearerAuth
// @Router /saved-prompts [post]
func (h *SavedPromptHandler) SavePrompt(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req service.SavePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.savedService.SavePrompt(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// MoveSavedPrompt handles PATCH /saved-prompts/:id/folder
// @Summary Move a saved prompt between folders
// @Description Reassigns the saved prompt's folder; a null folder_id moves it back to unsorted
// @Tags saved-prompts
// @Accept json
// @Produce json
// @Param id path string true "Saved prompt ID"
// @Param request body service.MoveSavedPromptRequest true "Target folder"
// @Success 200 {object} service.SavedPromptResponse "Updated saved prompt"
// @Failure 403 {object} map[string]interface{} "Not the caller's saved prompt or folder"
// @Failure 404 {object} map[string]interface{} "Saved prompt or folder not found"
// @Security BearerAuth
// @Router /saved-prompts/{id}/folder [patch]
func (h *SavedPromptHandler) MoveSavedPrompt(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.MoveSavedPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.savedService.MoveToFolder(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSavedPrompt handles DELETE /saved-prompts/:id
// @Summary Remove a saved prompt
// @Tags saved-prompts
// @Produce json
// @Param id path string true "Saved prompt ID"
// @Success 204 "Saved prompt removed"
// @Failure 403 {object} map[string]interface{} "Not the caller's saved prompt"
// @Failure 404 {object} map[string]interface{} "Saved prompt not found"
// @Security BearerAuth
// @Router /saved-prompts/{id} [delete]
func (h *SavedPromptHandler) DeleteSavedPrompt(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.savedService.Unsave(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
