package repository

import (
	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team memberships
type TeamMemberRepository struct {
	db *gorm.DB
}

// Ensure TeamMemberRepository implements TeamMemberRepositoryInterface
var _ TeamMemberRepositoryInterface = (*TeamMemberRepository)(nil)

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create inserts a new team membership
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByUser retrieves a user's membership. Users belong to at most one team;
// the oldest row wins if data drifts.
func (r *TeamMemberRepository) GetByUser(userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// CountByTeam counts the members of a team
func (r *TeamMemberRepository) CountByTeam(teamID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
