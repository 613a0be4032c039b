package service

import (
	"fmt"

	"promptvault-backend/internal/database/models"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/repository"

	"github.com/google/uuid"
)

// FeedbackService handles business logic for helpful/not-helpful feedback
type FeedbackService struct {
	repo       repository.FeedbackRepositoryInterface
	promptRepo repository.PromptRepositoryInterface
}

// Ensure FeedbackService implements FeedbackServiceInterface
var _ FeedbackServiceInterface = (*FeedbackService)(nil)

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(repo repository.FeedbackRepositoryInterface, promptRepo repository.PromptRepositoryInterface) *FeedbackService {
	return &FeedbackService{
		repo:       repo,
		promptRepo: promptRepo,
	}
}

// SubmitFeedbackRequest represents a helpful/not-helpful vote
type SubmitFeedbackRequest struct {
	Helpful *bool `json:"helpful" validate:"required"`
}

// FeedbackResponse represents a feedback vote in API responses
type FeedbackResponse struct {
	PromptID uuid.UUID `json:"prompt_id"`
	Helpful  bool      `json:"helpful"`
}

// SubmitFeedback records the user's vote on a prompt, replacing any earlier
// vote from the same user.
func (s *FeedbackService) SubmitFeedback(userID, promptID uuid.UUID, req *SubmitFeedbackRequest) (*FeedbackResponse, error) {
	if req.Helpful == nil {
		return nil, apperrors.NewValidationError("helpful", "field is required")
	}
	if _, err := s.promptRepo.GetByID(promptID); err != nil {
		return nil, apperrors.ErrPromptNotFound
	}

	feedback := &models.PromptFeedback{
		PromptID: promptID,
		UserID:   userID,
		Helpful:  *req.Helpful,
	}
	if err := s.repo.Upsert(feedback); err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return &FeedbackResponse{PromptID: promptID, Helpful: *req.Helpful}, nil
}
