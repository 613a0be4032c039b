package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "prompt"}
		assert.Equal(t, "prompt not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "prompt"}
		err2 := &NotFoundError{Entity: "prompt"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "prompt"}
		err2 := &NotFoundError{Entity: "folder"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrPromptNotFound, ErrPromptNotFound))
		assert.False(t, errors.Is(ErrPromptNotFound, ErrFolderNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrFolderNotFound))
		assert.False(t, IsNotFound(ErrRatingOutOfRange))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading dashboard: %w", ErrTeamNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "saved prompt", Context: "for this user and prompt"}
		assert.Equal(t, "saved prompt already exists for this user and prompt", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "folder"}
		assert.Equal(t, "folder already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "saved prompt", Context: "for user"}
		err2 := &AlreadyExistsError{Entity: "saved prompt", Context: "for user"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrPromptAlreadySaved))
		assert.False(t, IsAlreadyExists(ErrPromptNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
		assert.Equal(t, "validation error: rating - must be between 1 and 5", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("name", "must not be empty")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrPromptNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrUserIDNotFound))
		assert.False(t, IsAuthentication(ErrModerationForbidden))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrUserNotAssignedToTeam))
		assert.True(t, IsAuthorization(ErrModerationForbidden))
		assert.False(t, IsAuthorization(ErrUserIDNotFound))
	})

	t.Run("IsConfiguration helper", func(t *testing.T) {
		assert.True(t, IsConfiguration(ErrAssistantKeyNotSet))
		assert.False(t, IsConfiguration(ErrUserIDNotFound))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("widget")
		assert.Equal(t, "widget not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("widget", "in the catalog")
		assert.Equal(t, "widget already exists in the catalog", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("nope")
		assert.Equal(t, "nope", err.Error())
		assert.True(t, IsAuthorization(err))
	})
}
