package repository

import (
	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FolderRepository handles database operations for prompt folders
type FolderRepository struct {
	db *gorm.DB
}

// Ensure FolderRepository implements FolderRepositoryInterface
var _ FolderRepositoryInterface = (*FolderRepository)(nil)

// NewFolderRepository creates a new folder repository
func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

// Create inserts a new folder
func (r *FolderRepository) Create(folder *models.PromptFolder) error {
	return r.db.Create(folder).Error
}

// GetByID retrieves a folder by its UUID
func (r *FolderRepository) GetByID(id uuid.UUID) (*models.PromptFolder, error) {
	var folder models.PromptFolder
	if err := r.db.First(&folder, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetByUser retrieves a user's folders in creation order
func (r *FolderRepository) GetByUser(userID uuid.UUID) ([]models.PromptFolder, error) {
	var folders []models.PromptFolder
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

// CountByUser counts a user's folders, used for round-robin color assignment
func (r *FolderRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.PromptFolder{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateName renames a folder in place
func (r *FolderRepository) UpdateName(id uuid.UUID, name string) error {
	result := r.db.Model(&models.PromptFolder{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a folder by ID. Callers must clear saved prompt references
// first; there is no database cascade on folder_id.
func (r *FolderRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PromptFolder{}, "id = ?", id).Error
}
