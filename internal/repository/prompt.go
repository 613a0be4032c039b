package repository

import (
	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromptRepository handles database operations for prompts
type PromptRepository struct {
	db *gorm.DB
}

// Ensure PromptRepository implements PromptRepositoryInterface
var _ PromptRepositoryInterface = (*PromptRepository)(nil)

// NewPromptRepository creates a new prompt repository
func NewPromptRepository(db *gorm.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

// Create inserts a new prompt
func (r *PromptRepository) Create(prompt *models.Prompt) error {
	return r.db.Create(prompt).Error
}

// GetByID retrieves a prompt by its UUID
func (r *PromptRepository) GetByID(id uuid.UUID) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := r.db.First(&prompt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

// GetByIDs retrieves prompts by a set of UUID IDs
func (r *PromptRepository) GetByIDs(ids []uuid.UUID) ([]models.Prompt, error) {
	if len(ids) == 0 {
		return []models.Prompt{}, nil
	}
	var prompts []models.Prompt
	if err := r.db.Where("id IN ?", ids).Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

// GetByTeam retrieves a team's private prompt library, newest first
func (r *PromptRepository) GetByTeam(teamID uuid.UUID) ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := r.db.Where("team_id = ?", teamID).Order("created_at DESC").Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

// GetCommunity retrieves all public community prompts (no team), newest first
func (r *PromptRepository) GetCommunity() ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := r.db.Where("is_public = ? AND team_id IS NULL", true).Order("created_at DESC").Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

// IncrementUseCount bumps a prompt's use counter atomically. The counter is
// monotonically non-decreasing; there is no API path that lowers it.
func (r *PromptRepository) IncrementUseCount(id uuid.UUID) error {
	result := r.db.Model(&models.Prompt{}).
		Where("id = ?", id).
		UpdateColumn("use_count", gorm.Expr("use_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
