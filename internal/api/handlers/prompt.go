package handlers

import (
	"net/http"
	"strings"

	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PromptHandler handles HTTP requests for prompt operations
type PromptHandler struct {
	promptService service.PromptServiceInterface
	savedService  service.SavedPromptServiceInterface
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(promptService service.PromptServiceInterface, savedService service.SavedPromptServiceInterface) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
		savedService:  savedService,
	}
}

// mappingsForCaller loads folder mappings for signed-in callers; anonymous
// callers get none, which disables folder filtering.
func (h *PromptHandler) mappingsForCaller(c *gin.Context) ([]service.FolderMapping, error) {
	userID := optionalUserID(c)
	if userID == nil {
		return nil, nil
	}
	return h.savedService.GetFolderMappings(*userID)
}

// parseCategories splits the kanban category order parameter
func parseCategories(c *gin.Context) []string {
	raw := c.Query("categories")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	categories := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	return categories
}

// ListCommunityPrompts handles GET /prompts/community
// @Summary List community prompts
// @Description Get public prompts with search, category, folder filtering and sorting. Pass view=kanban with a categories list for the grouped view.
// @Tags prompts
// @Produce json
// @Param search query string false "Case-insensitive substring over title, description and tags"
// @Param category query string false "Exact category filter"
// @Param folder query string false "Folder id, or 'unsorted'"
// @Param sort query string false "Sort column: title, category, use_count, created_at"
// @Param direction query string false "Sort direction: asc or desc" default(asc)
// @Param view query string false "list or kanban" default(list)
// @Param categories query string false "Comma-separated category order for the kanban view"
// @Success 200 {object} service.PromptListResponse "Filtered prompts"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /prompts/community [get]
func (h *PromptHandler) ListCommunityPrompts(c *gin.Context) {
	query := queryFromRequest(c)
	mappings, err := h.mappingsForCaller(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("view") == "kanban" {
		resp, err := h.promptService.GetCommunityKanban(query, mappings, parseCategories(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.promptService.GetCommunityPrompts(query, mappings)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListLibraryPrompts handles GET /prompts/library
// @Summary List team library prompts
// @Description Get the caller's team prompts with the same filtering and sorting as the community listing
// @Tags prompts
// @Produce json
// @Param search query string false "Case-insensitive substring over title, description and tags"
// @Param category query string false "Exact category filter"
// @Param folder query string false "Folder id, or 'unsorted'"
// @Param sort query string false "Sort column: title, category, use_count, created_at"
// @Param direction query string false "Sort direction: asc or desc" default(asc)
// @Param view query string false "list or kanban" default(list)
// @Param categories query string false "Comma-separated category order for the kanban view"
// @Success 200 {object} service.PromptListResponse "Filtered prompts"
// @Failure 403 {object} map[string]interface{} "Caller has no team"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /prompts/library [get]
func (h *PromptHandler) ListLibraryPrompts(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	query := queryFromRequest(c)
	mappings, err := h.savedService.GetFolderMappings(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("view") == "kanban" {
		resp, err := h.promptService.GetLibraryKanban(userID, query, mappings, parseCategories(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.promptService.GetLibraryPrompts(userID, query, mappings)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPrompt handles GET /prompts/:id
// @Summary Get a prompt
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} service.PromptResponse "Prompt"
// @Failure 404 {object} map[string]interface{} "Prompt not found"
// @Router /prompts/{id} [get]
func (h *PromptHandler) GetPrompt(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.promptService.GetPrompt(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordUse handles POST /prompts/:id/use
// @Summary Record a prompt use
// @Description Increments the prompt's use counter
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 204 "Use recorded"
// @Failure 404 {object} map[string]interface{} "Prompt not found"
// @Security BearerAuth
// @Router /prompts/{id}/use [post]
func (h *PromptHandler) RecordUse(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.promptService.RecordUse(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ContributePrompt handles POST /prompts
// @Summary Contribute a prompt
// @Description Team members publish into their team library; everyone else lands in the moderation queue
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body service.ContributePromptRequest true "Prompt contribution"
// @Success 201 {object} service.ContributePromptResponse "Contribution accepted"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /prompts [post]
func (h *PromptHandler) ContributePrompt(c *gin.Context) {
	var req service.ContributePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.promptService.Contribute(optionalUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
