package service

import (
	"fmt"
	"strings"

	"promptvault-backend/internal/database/models"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// folderPalette is the fixed color rotation for new folders
var folderPalette = []string{
	"#3b82f6", "#22c55e", "#ef4444", "#f59e0b",
	"#8b5cf6", "#ec4899", "#06b6d4", "#f97316",
}

// FolderService handles business logic for prompt folders
type FolderService struct {
	repo      repository.FolderRepositoryInterface
	savedRepo repository.SavedPromptRepositoryInterface
	validator *validator.Validate
}

// Ensure FolderService implements FolderServiceInterface
var _ FolderServiceInterface = (*FolderService)(nil)

// NewFolderService creates a new FolderService
func NewFolderService(repo repository.FolderRepositoryInterface, savedRepo repository.SavedPromptRepositoryInterface, validator *validator.Validate) *FolderService {
	return &FolderService{
		repo:      repo,
		savedRepo: savedRepo,
		validator: validator,
	}
}

// CreateFolderRequest represents the data needed to create a folder
type CreateFolderRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// RenameFolderRequest represents the data needed to rename a folder
type RenameFolderRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// FolderResponse represents a folder in API responses
type FolderResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt string    `json:"created_at"`
}

// CreateFolder creates a folder for the user, assigning the next palette
// color based on how many folders the user already has.
func (s *FolderService) CreateFolder(userID uuid.UUID, req *CreateFolderRequest) (*FolderResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ErrEmptyFolderName
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	count, err := s.repo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count folders: %w", err)
	}

	folder := &models.PromptFolder{
		Name:   name,
		UserID: userID,
		Color:  folderPalette[int(count)%len(folderPalette)],
	}
	if err := s.repo.Create(folder); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return s.toResponse(folder), nil
}

// GetFolders lists the user's folders
func (s *FolderService) GetFolders(userID uuid.UUID) ([]FolderResponse, error) {
	folders, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get folders: %w", err)
	}
	responses := make([]FolderResponse, len(folders))
	for i := range folders {
		responses[i] = *s.toResponse(&folders[i])
	}
	return responses, nil
}

// RenameFolder updates a folder's name in place. The folder must belong to
// the acting user.
func (s *FolderService) RenameFolder(userID, folderID uuid.UUID, req *RenameFolderRequest) (*FolderResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ErrEmptyFolderName
	}

	folder, err := s.ownedFolder(userID, folderID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateName(folder.ID, name); err != nil {
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}
	folder.Name = name
	return s.toResponse(folder), nil
}

// DeleteFolder removes a folder. Saved prompts referencing it are moved back
// to the unsorted state first; if that reassignment fails the folder is left
// untouched.
func (s *FolderService) DeleteFolder(userID, folderID uuid.UUID) error {
	folder, err := s.ownedFolder(userID, folderID)
	if err != nil {
		return err
	}
	if err := s.savedRepo.ClearFolderReferences(folder.ID); err != nil {
		return fmt.Errorf("failed to clear folder references: %w", err)
	}
	if err := s.repo.Delete(folder.ID); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	return nil
}

// ownedFolder loads a folder and checks it belongs to the user
func (s *FolderService) ownedFolder(userID, folderID uuid.UUID) (*models.PromptFolder, error) {
	folder, err := s.repo.GetByID(folderID)
	if err != nil {
		return nil, apperrors.ErrFolderNotFound
	}
	if folder.UserID != userID {
		return nil, apperrors.ErrFolderNotOwned
	}
	return folder, nil
}

// toResponse converts a PromptFolder model to API response
func (s *FolderService) toResponse(folder *models.PromptFolder) *FolderResponse {
	return &FolderResponse{
		ID:        folder.ID,
		Name:      folder.Name,
		Color:     folder.Color,
		CreatedAt: folder.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
