package repository

import (
	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeedbackRepository handles database operations for prompt feedback
type FeedbackRepository struct {
	db *gorm.DB
}

// Ensure FeedbackRepository implements FeedbackRepositoryInterface
var _ FeedbackRepositoryInterface = (*FeedbackRepository)(nil)

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Upsert inserts or updates the feedback row keyed by (prompt_id, user_id)
func (r *FeedbackRepository) Upsert(feedback *models.PromptFeedback) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "prompt_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"helpful", "updated_at"}),
	}).Create(feedback).Error
}

// GetByPromptAndUser retrieves the unique feedback for a (prompt, user) pair
func (r *FeedbackRepository) GetByPromptAndUser(promptID, userID uuid.UUID) (*models.PromptFeedback, error) {
	var feedback models.PromptFeedback
	if err := r.db.First(&feedback, "prompt_id = ? AND user_id = ?", promptID, userID).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

// GetByPromptIDs retrieves feedback rows for a set of prompts
func (r *FeedbackRepository) GetByPromptIDs(promptIDs []uuid.UUID) ([]models.PromptFeedback, error) {
	if len(promptIDs) == 0 {
		return []models.PromptFeedback{}, nil
	}
	var feedback []models.PromptFeedback
	if err := r.db.Where("prompt_id IN ?", promptIDs).Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
