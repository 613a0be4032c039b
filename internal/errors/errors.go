package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this user"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrPromptNotFound      = &NotFoundError{Entity: "prompt"}
	ErrSavedPromptNotFound = &NotFoundError{Entity: "saved prompt"}
	ErrFolderNotFound      = &NotFoundError{Entity: "folder"}
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrProfileNotFound     = &NotFoundError{Entity: "profile"}
	ErrSubmissionNotFound  = &NotFoundError{Entity: "community submission"}
	ErrMembershipNotFound  = &NotFoundError{Entity: "team membership"}
)

// Already Exists Errors
var (
	ErrPromptAlreadySaved = &AlreadyExistsError{Entity: "saved prompt", Context: "for this user and prompt"}
	ErrMembershipExists   = &AlreadyExistsError{Entity: "team membership", Context: "for this user"}
)

// Business Logic Errors
var (
	ErrRatingOutOfRange        = errors.New("rating must be between 1 and 5")
	ErrEmptyFolderName         = errors.New("folder name must not be empty")
	ErrFolderNotOwned          = errors.New("folder does not belong to this user")
	ErrSavedPromptNotOwned     = errors.New("saved prompt does not belong to this user")
	ErrSubmissionNotPending    = errors.New("submission has already been reviewed")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidSortColumn       = errors.New("invalid sort column")
	ErrInvalidFolderFilter     = errors.New("invalid folder filter")
)

// Authentication Errors
var (
	ErrUserIDNotFound        = &AuthenticationError{Message: "user id not found in context"}
	ErrUserNotAssignedToTeam = &AuthorizationError{Message: "user is not assigned to any team"}
	ErrModerationForbidden   = &AuthorizationError{Message: "user role does not permit moderation"}
)

// Configuration Errors
var (
	ErrAssistantKeyNotSet = &ConfigurationError{Message: "ANTHROPIC_API_KEY environment variable not set"}
	ErrAuthKeysNotSet     = &ConfigurationError{Message: "neither SUPABASE_JWKS_URL nor SUPABASE_JWT_SECRET is set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
