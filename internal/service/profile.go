package service

import (
	"fmt"

	"promptvault-backend/internal/database/models"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProfileService handles business logic for user profiles
type ProfileService struct {
	repo      repository.ProfileRepositoryInterface
	validator *validator.Validate
}

// Ensure ProfileService implements ProfileServiceInterface
var _ ProfileServiceInterface = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService
func NewProfileService(repo repository.ProfileRepositoryInterface, validator *validator.Validate) *ProfileService {
	return &ProfileService{
		repo:      repo,
		validator: validator,
	}
}

// UpdateProfileRequest represents the editable profile fields
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,max=200"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=500"`
	Role      *string `json:"role" validate:"omitempty,max=50"`
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      *string   `json:"role,omitempty"`
}

// GetProfile retrieves the caller's profile. A missing row is lazily created
// from the token's identity so first-time sign-ins always have one.
func (s *ProfileService) GetProfile(userID uuid.UUID, email string) (*ProfileResponse, error) {
	profile, err := s.repo.GetByID(userID)
	if err != nil {
		profile = &models.Profile{ID: userID, Email: email}
		if err := s.repo.Upsert(profile); err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
	}
	return s.toResponse(profile), nil
}

// UpdateProfile applies the editable fields to the caller's profile
func (s *ProfileService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, apperrors.ErrProfileNotFound
	}
	if req.FullName != nil {
		profile.FullName = req.FullName
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.Role != nil {
		profile.Role = req.Role
	}
	if err := s.repo.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.toResponse(profile), nil
}

// toResponse converts a Profile model to API response
func (s *ProfileService) toResponse(profile *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
		Role:      profile.Role,
	}
}
