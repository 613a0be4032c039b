package repository

import (
	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingRepository handles database operations for prompt ratings
type RatingRepository struct {
	db *gorm.DB
}

// Ensure RatingRepository implements RatingRepositoryInterface
var _ RatingRepositoryInterface = (*RatingRepository)(nil)

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create inserts a new rating
func (r *RatingRepository) Create(rating *models.PromptRating) error {
	return r.db.Create(rating).Error
}

// GetByPromptAndUser retrieves the unique rating for a (prompt, user) pair
func (r *RatingRepository) GetByPromptAndUser(promptID, userID uuid.UUID) (*models.PromptRating, error) {
	var rating models.PromptRating
	if err := r.db.First(&rating, "prompt_id = ? AND user_id = ?", promptID, userID).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByPrompt retrieves all ratings for one prompt
func (r *RatingRepository) GetByPrompt(promptID uuid.UUID) ([]models.PromptRating, error) {
	var ratings []models.PromptRating
	if err := r.db.Where("prompt_id = ?", promptID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetByPromptIDs retrieves ratings for a set of prompts
func (r *RatingRepository) GetByPromptIDs(promptIDs []uuid.UUID) ([]models.PromptRating, error) {
	if len(promptIDs) == 0 {
		return []models.PromptRating{}, nil
	}
	var ratings []models.PromptRating
	if err := r.db.Where("prompt_id IN ?", promptIDs).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// UpdateValue changes an existing rating's value in place
func (r *RatingRepository) UpdateValue(id uuid.UUID, rating int) error {
	result := r.db.Model(&models.PromptRating{}).
		Where("id = ?", id).
		Update("rating", rating)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
