package handlers

import (
	"errors"
	"net/http"

	"promptvault-backend/internal/auth"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// userIDFromContext extracts the authenticated user id set by the auth
// middleware. Handlers behind RequireAuth can rely on it being present.
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString(auth.ContextUserID)
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user id in token"})
		return uuid.Nil, false
	}
	return userID, true
}

// optionalUserID returns the caller's id when OptionalAuth resolved a valid
// token, nil otherwise.
func optionalUserID(c *gin.Context) *uuid.UUID {
	raw := c.GetString(auth.ContextUserID)
	if raw == "" {
		return nil
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &userID
}

// pathUUID parses a uuid path parameter, responding 400 on malformed input
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// queryFromRequest builds the listing query from request parameters
func queryFromRequest(c *gin.Context) service.PromptQuery {
	return service.PromptQuery{
		Search:        c.Query("search"),
		Category:      c.Query("category"),
		Folder:        c.Query("folder"),
		SortColumn:    service.SortColumn(c.Query("sort")),
		SortDirection: service.SortDirection(c.Query("direction")),
	}
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRatingOutOfRange),
		errors.Is(err, apperrors.ErrEmptyFolderName),
		errors.Is(err, apperrors.ErrInvalidSortColumn),
		errors.Is(err, apperrors.ErrInvalidFolderFilter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrFolderNotOwned),
		errors.Is(err, apperrors.ErrSavedPromptNotOwned):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSubmissionNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
