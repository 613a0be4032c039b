package service

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PromptServiceInterface defines the interface for prompt service
type PromptServiceInterface interface {
	GetCommunityPrompts(query PromptQuery, mappings []FolderMapping) (*PromptListResponse, error)
	GetLibraryPrompts(userID uuid.UUID, query PromptQuery, mappings []FolderMapping) (*PromptListResponse, error)
	GetCommunityKanban(query PromptQuery, mappings []FolderMapping, categories []string) (*KanbanResponse, error)
	GetLibraryKanban(userID uuid.UUID, query PromptQuery, mappings []FolderMapping, categories []string) (*KanbanResponse, error)
	GetPrompt(id uuid.UUID) (*PromptResponse, error)
	RecordUse(id uuid.UUID) error
	Contribute(userID *uuid.UUID, req *ContributePromptRequest) (*ContributePromptResponse, error)
}

// SavedPromptServiceInterface defines the interface for saved prompt service
type SavedPromptServiceInterface interface {
	SavePrompt(userID uuid.UUID, req *SavePromptRequest) (*SavedPromptResponse, error)
	GetSavedPrompts(userID uuid.UUID) ([]SavedPromptResponse, error)
	GetFolderMappings(userID uuid.UUID) ([]FolderMapping, error)
	MoveToFolder(userID, savedPromptID uuid.UUID, req *MoveSavedPromptRequest) (*SavedPromptResponse, error)
	Unsave(userID, savedPromptID uuid.UUID) error
}

// FolderServiceInterface defines the interface for folder service
type FolderServiceInterface interface {
	CreateFolder(userID uuid.UUID, req *CreateFolderRequest) (*FolderResponse, error)
	GetFolders(userID uuid.UUID) ([]FolderResponse, error)
	RenameFolder(userID, folderID uuid.UUID, req *RenameFolderRequest) (*FolderResponse, error)
	DeleteFolder(userID, folderID uuid.UUID) error
}

// RatingServiceInterface defines the interface for rating service
type RatingServiceInterface interface {
	RatePrompt(userID, promptID uuid.UUID, req *RatePromptRequest) (*RatingSummaryResponse, error)
}

// FeedbackServiceInterface defines the interface for feedback service
type FeedbackServiceInterface interface {
	SubmitFeedback(userID, promptID uuid.UUID, req *SubmitFeedbackRequest) (*FeedbackResponse, error)
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	GetDashboard(userID uuid.UUID) (*DashboardResponse, error)
}

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	GetProfile(userID uuid.UUID, email string) (*ProfileResponse, error)
	UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error)
}

// SubmissionServiceInterface defines the interface for submission moderation
type SubmissionServiceInterface interface {
	ListPending(userID uuid.UUID, page, pageSize int) (*SubmissionListResponse, error)
	Approve(userID, submissionID uuid.UUID) (*ApproveSubmissionResponse, error)
	Reject(userID, submissionID uuid.UUID) (*SubmissionResponse, error)
}

// AssistantServiceInterface defines the interface for the chat assistant
type AssistantServiceInterface interface {
	StreamChat(ctx context.Context, req *ChatRequest, writer gin.ResponseWriter) error
}
