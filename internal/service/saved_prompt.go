package service

import (
	"fmt"

	"promptvault-backend/internal/database/models"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SavedPromptService handles business logic for saved prompts
type SavedPromptService struct {
	repo       repository.SavedPromptRepositoryInterface
	promptRepo repository.PromptRepositoryInterface
	folderRepo repository.FolderRepositoryInterface
	validator  *validator.Validate
}

// Ensure SavedPromptService implements SavedPromptServiceInterface
var _ SavedPromptServiceInterface = (*SavedPromptService)(nil)

// NewSavedPromptService creates a new SavedPromptService
func NewSavedPromptService(
	repo repository.SavedPromptRepositoryInterface,
	promptRepo repository.PromptRepositoryInterface,
	folderRepo repository.FolderRepositoryInterface,
	validator *validator.Validate,
) *SavedPromptService {
	return &SavedPromptService{
		repo:       repo,
		promptRepo: promptRepo,
		folderRepo: folderRepo,
		validator:  validator,
	}
}

// SavePromptRequest represents the data needed to save a prompt
type SavePromptRequest struct {
	PromptID uuid.UUID  `json:"prompt_id" validate:"required"`
	FolderID *uuid.UUID `json:"folder_id"`
}

// MoveSavedPromptRequest represents the data needed to move a saved prompt
// between folders. A nil FolderID moves it back to unsorted.
type MoveSavedPromptRequest struct {
	FolderID *uuid.UUID `json:"folder_id"`
}

// SavedPromptResponse represents a saved prompt in API responses
type SavedPromptResponse struct {
	ID        uuid.UUID       `json:"id"`
	PromptID  uuid.UUID       `json:"prompt_id"`
	FolderID  *uuid.UUID      `json:"folder_id,omitempty"`
	Prompt    *PromptResponse `json:"prompt,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// SavePrompt bookmarks a prompt for the user. Saving the same prompt twice
// is rejected; an optional folder must belong to the user.
func (s *SavedPromptService) SavePrompt(userID uuid.UUID, req *SavePromptRequest) (*SavedPromptResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.promptRepo.GetByID(req.PromptID); err != nil {
		return nil, apperrors.ErrPromptNotFound
	}
	if _, err := s.repo.GetByUserAndPrompt(userID, req.PromptID); err == nil {
		return nil, apperrors.ErrPromptAlreadySaved
	}
	if req.FolderID != nil {
		if err := s.checkFolderOwnership(userID, *req.FolderID); err != nil {
			return nil, err
		}
	}

	saved := &models.SavedPrompt{
		UserID:   userID,
		PromptID: req.PromptID,
		FolderID: req.FolderID,
	}
	if err := s.repo.Create(saved); err != nil {
		return nil, fmt.Errorf("failed to save prompt: %w", err)
	}
	return s.toResponse(saved), nil
}

// GetSavedPrompts lists the user's saved prompts, newest first
func (s *SavedPromptService) GetSavedPrompts(userID uuid.UUID) ([]SavedPromptResponse, error) {
	saves, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get saved prompts: %w", err)
	}
	responses := make([]SavedPromptResponse, len(saves))
	for i := range saves {
		responses[i] = *s.toResponse(&saves[i])
	}
	return responses, nil
}

// GetFolderMappings returns the user's saved prompt to folder assignments,
// the shape the listing filter works from.
func (s *SavedPromptService) GetFolderMappings(userID uuid.UUID) ([]FolderMapping, error) {
	saves, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get saved prompts: %w", err)
	}
	mappings := make([]FolderMapping, len(saves))
	for i, save := range saves {
		mappings[i] = FolderMapping{
			SavedPromptID: save.ID,
			PromptID:      save.PromptID,
			FolderID:      save.FolderID,
		}
	}
	return mappings, nil
}

// MoveToFolder reassigns a saved prompt to another folder, or to none. Both
// the saved prompt and the target folder must belong to the acting user.
func (s *SavedPromptService) MoveToFolder(userID, savedPromptID uuid.UUID, req *MoveSavedPromptRequest) (*SavedPromptResponse, error) {
	saved, err := s.ownedSave(userID, savedPromptID)
	if err != nil {
		return nil, err
	}
	if req.FolderID != nil {
		if err := s.checkFolderOwnership(userID, *req.FolderID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.UpdateFolder(saved.ID, req.FolderID); err != nil {
		return nil, fmt.Errorf("failed to move saved prompt: %w", err)
	}
	saved.FolderID = req.FolderID
	return s.toResponse(saved), nil
}

// Unsave removes a bookmark. The saved prompt must belong to the acting user.
func (s *SavedPromptService) Unsave(userID, savedPromptID uuid.UUID) error {
	saved, err := s.ownedSave(userID, savedPromptID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(saved.ID); err != nil {
		return fmt.Errorf("failed to delete saved prompt: %w", err)
	}
	return nil
}

func (s *SavedPromptService) ownedSave(userID, savedPromptID uuid.UUID) (*models.SavedPrompt, error) {
	saved, err := s.repo.GetByID(savedPromptID)
	if err != nil {
		return nil, apperrors.ErrSavedPromptNotFound
	}
	if saved.UserID != userID {
		return nil, apperrors.ErrSavedPromptNotOwned
	}
	return saved, nil
}

func (s *SavedPromptService) checkFolderOwnership(userID, folderID uuid.UUID) error {
	folder, err := s.folderRepo.GetByID(folderID)
	if err != nil {
		return apperrors.ErrFolderNotFound
	}
	if folder.UserID != userID {
		return apperrors.ErrFolderNotOwned
	}
	return nil
}

// toResponse converts a SavedPrompt model to API response
func (s *SavedPromptService) toResponse(saved *models.SavedPrompt) *SavedPromptResponse {
	resp := &SavedPromptResponse{
		ID:        saved.ID,
		PromptID:  saved.PromptID,
		FolderID:  saved.FolderID,
		CreatedAt: saved.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if saved.Prompt.ID != uuid.Nil {
		prompt := toPromptResponse(&saved.Prompt)
		resp.Prompt = &prompt
	}
	return resp
}
