package repository

import (
	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionRepository handles database operations for community submissions
type SubmissionRepository struct {
	db *gorm.DB
}

// Ensure SubmissionRepository implements SubmissionRepositoryInterface
var _ SubmissionRepositoryInterface = (*SubmissionRepository)(nil)

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a new submission into the moderation queue
func (r *SubmissionRepository) Create(submission *models.CommunitySubmission) error {
	return r.db.Create(submission).Error
}

// GetByID retrieves a submission by its UUID
func (r *SubmissionRepository) GetByID(id uuid.UUID) (*models.CommunitySubmission, error) {
	var submission models.CommunitySubmission
	if err := r.db.First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByStatus retrieves submissions in a moderation state with pagination
func (r *SubmissionRepository) GetByStatus(status models.SubmissionStatus, limit, offset int) ([]models.CommunitySubmission, int64, error) {
	var submissions []models.CommunitySubmission
	var total int64

	// Count total
	if err := r.db.Model(&models.CommunitySubmission{}).Where("status = ?", status).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Fetch page
	if err := r.db.Where("status = ?", status).Order("created_at ASC").Limit(limit).Offset(offset).Find(&submissions).Error; err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

// UpdateStatus moves a submission to a new moderation state
func (r *SubmissionRepository) UpdateStatus(id uuid.UUID, status models.SubmissionStatus) error {
	result := r.db.Model(&models.CommunitySubmission{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
