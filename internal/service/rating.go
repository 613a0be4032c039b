package service

import (
	"fmt"

	"promptvault-backend/internal/database/models"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RatingService handles business logic for prompt ratings
type RatingService struct {
	repo       repository.RatingRepositoryInterface
	promptRepo repository.PromptRepositoryInterface
	validator  *validator.Validate
}

// Ensure RatingService implements RatingServiceInterface
var _ RatingServiceInterface = (*RatingService)(nil)

// NewRatingService creates a new RatingService
func NewRatingService(repo repository.RatingRepositoryInterface, promptRepo repository.PromptRepositoryInterface, validator *validator.Validate) *RatingService {
	return &RatingService{
		repo:       repo,
		promptRepo: promptRepo,
		validator:  validator,
	}
}

// RatePromptRequest represents a 1-5 star rating submission
type RatePromptRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// RatingSummaryResponse is the recomputed rating summary after a submission
type RatingSummaryResponse struct {
	PromptID    uuid.UUID `json:"prompt_id"`
	UserRating  int       `json:"user_rating"`
	AvgRating   float64   `json:"avg_rating"`
	RatingCount int       `json:"rating_count"`
}

// RatePrompt records or replaces the user's rating of a prompt and returns
// the recomputed average. A second rating from the same user updates the
// existing row instead of adding one.
func (s *RatingService) RatePrompt(userID, promptID uuid.UUID, req *RatePromptRequest) (*RatingSummaryResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrRatingOutOfRange
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.promptRepo.GetByID(promptID); err != nil {
		return nil, apperrors.ErrPromptNotFound
	}

	existing, err := s.repo.GetByPromptAndUser(promptID, userID)
	if err == nil {
		if err := s.repo.UpdateValue(existing.ID, req.Rating); err != nil {
			return nil, fmt.Errorf("failed to update rating: %w", err)
		}
	} else {
		rating := &models.PromptRating{
			PromptID: promptID,
			UserID:   userID,
			Rating:   req.Rating,
		}
		if err := s.repo.Create(rating); err != nil {
			return nil, fmt.Errorf("failed to create rating: %w", err)
		}
	}

	ratings, err := s.repo.GetByPrompt(promptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return &RatingSummaryResponse{
		PromptID:    promptID,
		UserRating:  req.Rating,
		AvgRating:   averageRating(sum, len(ratings)),
		RatingCount: len(ratings),
	}, nil
}
