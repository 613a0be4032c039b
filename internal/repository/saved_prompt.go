package repository

import (
	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedPromptRepository handles database operations for saved prompts
type SavedPromptRepository struct {
	db *gorm.DB
}

// Ensure SavedPromptRepository implements SavedPromptRepositoryInterface
var _ SavedPromptRepositoryInterface = (*SavedPromptRepository)(nil)

// NewSavedPromptRepository creates a new saved prompt repository
func NewSavedPromptRepository(db *gorm.DB) *SavedPromptRepository {
	return &SavedPromptRepository{db: db}
}

// Create inserts a new saved prompt
func (r *SavedPromptRepository) Create(saved *models.SavedPrompt) error {
	return r.db.Create(saved).Error
}

// GetByID retrieves a saved prompt by its UUID
func (r *SavedPromptRepository) GetByID(id uuid.UUID) (*models.SavedPrompt, error) {
	var saved models.SavedPrompt
	if err := r.db.First(&saved, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetByUserAndPrompt retrieves the unique save for a (user, prompt) pair
func (r *SavedPromptRepository) GetByUserAndPrompt(userID, promptID uuid.UUID) (*models.SavedPrompt, error) {
	var saved models.SavedPrompt
	if err := r.db.First(&saved, "user_id = ? AND prompt_id = ?", userID, promptID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetByUser retrieves all of a user's saves, newest first
func (r *SavedPromptRepository) GetByUser(userID uuid.UUID) ([]models.SavedPrompt, error) {
	var saved []models.SavedPrompt
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

// GetRecent retrieves the most recently created saves across all users,
// feeding the dashboard activity feed
func (r *SavedPromptRepository) GetRecent(limit int) ([]models.SavedPrompt, error) {
	var saved []models.SavedPrompt
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

// UpdateFolder reassigns a save's folder pointer; nil moves it to unsorted
func (r *SavedPromptRepository) UpdateFolder(id uuid.UUID, folderID *uuid.UUID) error {
	result := r.db.Model(&models.SavedPrompt{}).
		Where("id = ?", id).
		Update("folder_id", folderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearFolderReferences moves every save in a folder to unsorted. Called
// before folder deletion since no database cascade is configured.
func (r *SavedPromptRepository) ClearFolderReferences(folderID uuid.UUID) error {
	return r.db.Model(&models.SavedPrompt{}).
		Where("folder_id = ?", folderID).
		Update("folder_id", nil).Error
}

// Delete removes a saved prompt by ID
func (r *SavedPromptRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SavedPrompt{}, "id = ?", id).Error
}
