package handlers

import (
	"net/http"

	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FolderHandler handles HTTP requests for folder operations
type FolderHandler struct {
	folderService service.FolderServiceInterface
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService service.FolderServiceInterface) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

// ListFolders handles GET /folders
// @Summary List the caller's folders
// @Tags folders
// @Produce json
// @Success 200 {array} service.FolderResponse "Folders"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /folders [get]
func (h *FolderHandler) ListFolders(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	resp, err := h.folderService.GetFolders(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateFolder handles POST /folders
// @Summary Create a folder
// @Description Creates a folder with the next color from the palette rotation
// @Tags folders
// @Accept json
// @Produce json
// @Param request body service.CreateFolderRequest true "Folder name"
// @Success 201 {object} service.FolderResponse "Created folder"
// @Failure 400 {object} map[string]interface{} "Invalid folder name"
// @Security BearerAuth
// @Router /folders [post]
func (h *FolderHandler) CreateFolder(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req service.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.folderService.CreateFolder(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RenameFolder handles PATCH /folders/:id
// @Summary Rename a folder
// @Tags folders
// @Accept json
// @Produce json
// @Param id path string true "Folder ID"
// @Param request body service.RenameFolderRequest true "New folder name"
// @Success 200 {object} service.FolderResponse "Renamed folder"
// @Failure 400 {object} map[string]interface{} "Invalid folder name"
// @Failure 403 {object} map[string]interface{} "Not the caller's folder"
// @Failure 404 {object} map[string]interface{} "Folder not found"
// @Security BearerAuth
// @Router /folders/{id} [patch]
func (h *FolderHandler) RenameFolder(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.folderService.RenameFolder(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteFolder handles DELETE /folders/:id
// @Summary Delete a folder
// @Description Saved prompts in the folder are moved back to unsorted before the folder is removed
// @Tags folders
// @Produce json
// @Param id path string true "Folder ID"
// @Success 204 "Folder deleted"
// @Failure 403 {object} map[string]interface{} "Not the caller's folder"
// @Failure 404 {object} map[string]interface{} "Folder not found"
// @Security BearerAuth
// @Router /folders/{id} [delete]
func (h *FolderHandler) DeleteFolder(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.folderService.DeleteFolder(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
