package repository

import (
	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PromptRepositoryInterface defines the interface for prompt repository operations
type PromptRepositoryInterface interface {
	Create(prompt *models.Prompt) error
	GetByID(id uuid.UUID) (*models.Prompt, error)
	GetByIDs(ids []uuid.UUID) ([]models.Prompt, error)
	GetByTeam(teamID uuid.UUID) ([]models.Prompt, error)
	GetCommunity() ([]models.Prompt, error)
	IncrementUseCount(id uuid.UUID) error
}

// SavedPromptRepositoryInterface defines the interface for saved prompt repository operations
type SavedPromptRepositoryInterface interface {
	Create(saved *models.SavedPrompt) error
	GetByID(id uuid.UUID) (*models.SavedPrompt, error)
	GetByUserAndPrompt(userID, promptID uuid.UUID) (*models.SavedPrompt, error)
	GetByUser(userID uuid.UUID) ([]models.SavedPrompt, error)
	GetRecent(limit int) ([]models.SavedPrompt, error)
	UpdateFolder(id uuid.UUID, folderID *uuid.UUID) error
	ClearFolderReferences(folderID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// FolderRepositoryInterface defines the interface for prompt folder repository operations
type FolderRepositoryInterface interface {
	Create(folder *models.PromptFolder) error
	GetByID(id uuid.UUID) (*models.PromptFolder, error)
	GetByUser(userID uuid.UUID) ([]models.PromptFolder, error)
	CountByUser(userID uuid.UUID) (int64, error)
	UpdateName(id uuid.UUID, name string) error
	Delete(id uuid.UUID) error
}

// RatingRepositoryInterface defines the interface for prompt rating repository operations
type RatingRepositoryInterface interface {
	Create(rating *models.PromptRating) error
	GetByPromptAndUser(promptID, userID uuid.UUID) (*models.PromptRating, error)
	GetByPrompt(promptID uuid.UUID) ([]models.PromptRating, error)
	GetByPromptIDs(promptIDs []uuid.UUID) ([]models.PromptRating, error)
	UpdateValue(id uuid.UUID, rating int) error
}

// FeedbackRepositoryInterface defines the interface for prompt feedback repository operations
type FeedbackRepositoryInterface interface {
	Upsert(feedback *models.PromptFeedback) error
	GetByPromptAndUser(promptID, userID uuid.UUID) (*models.PromptFeedback, error)
	GetByPromptIDs(promptIDs []uuid.UUID) ([]models.PromptFeedback, error)
}

// TeamMemberRepositoryInterface defines the interface for team membership repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByUser(userID uuid.UUID) (*models.TeamMember, error)
	CountByTeam(teamID uuid.UUID) (int64, error)
}

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Profile, error)
	Upsert(profile *models.Profile) error
}

// SubmissionRepositoryInterface defines the interface for community submission repository operations
type SubmissionRepositoryInterface interface {
	Create(submission *models.CommunitySubmission) error
	GetByID(id uuid.UUID) (*models.CommunitySubmission, error)
	GetByStatus(status models.SubmissionStatus, limit, offset int) ([]models.CommunitySubmission, int64, error)
	UpdateStatus(id uuid.UUID, status models.SubmissionStatus) error
}
