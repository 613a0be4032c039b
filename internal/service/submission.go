package service

import (
	"fmt"

	"promptvault-backend/internal/database/models"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/repository"

	"github.com/google/uuid"
)

// SubmissionService handles moderation of community submissions
type SubmissionService struct {
	repo           repository.SubmissionRepositoryInterface
	promptRepo     repository.PromptRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
}

// Ensure SubmissionService implements SubmissionServiceInterface
var _ SubmissionServiceInterface = (*SubmissionService)(nil)

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(
	repo repository.SubmissionRepositoryInterface,
	promptRepo repository.PromptRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
) *SubmissionService {
	return &SubmissionService{
		repo:           repo,
		promptRepo:     promptRepo,
		teamMemberRepo: teamMemberRepo,
	}
}

// SubmissionResponse represents a community submission in API responses
type SubmissionResponse struct {
	ID             uuid.UUID               `json:"id"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	Content        string                  `json:"content"`
	Category       string                  `json:"category"`
	Tags           []string                `json:"tags"`
	SubmitterEmail string                  `json:"submitter_email,omitempty"`
	Status         models.SubmissionStatus `json:"status"`
	CreatedAt      string                  `json:"created_at"`
}

// SubmissionListResponse represents a paginated list of submissions
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// ApproveSubmissionResponse reports the prompt created by an approval
type ApproveSubmissionResponse struct {
	Submission SubmissionResponse `json:"submission"`
	Prompt     PromptResponse     `json:"prompt"`
}

// requireModerator checks the acting user holds an owner or admin role on
// some team. Moderation is a cross-team duty, so any elevated role counts.
func (s *SubmissionService) requireModerator(userID uuid.UUID) error {
	membership, err := s.teamMemberRepo.GetByUser(userID)
	if err != nil {
		return apperrors.ErrModerationForbidden
	}
	if !membership.Role.CanModerate() {
		return apperrors.ErrModerationForbidden
	}
	return nil
}

// ListPending returns the moderation queue, oldest first
func (s *SubmissionService) ListPending(userID uuid.UUID, page, pageSize int) (*SubmissionListResponse, error) {
	if err := s.requireModerator(userID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	submissions, total, err := s.repo.GetByStatus(models.SubmissionStatusPending, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	responses := make([]SubmissionResponse, len(submissions))
	for i := range submissions {
		responses[i] = s.toResponse(&submissions[i])
	}
	return &SubmissionListResponse{
		Submissions: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Approve publishes a pending submission as a public prompt and marks the
// submission approved. The submission row stays for audit.
func (s *SubmissionService) Approve(userID, submissionID uuid.UUID) (*ApproveSubmissionResponse, error) {
	if err := s.requireModerator(userID); err != nil {
		return nil, err
	}
	submission, err := s.pendingSubmission(submissionID)
	if err != nil {
		return nil, err
	}

	prompt := &models.Prompt{
		Title:       submission.Title,
		Description: submission.Description,
		Content:     submission.Content,
		Category:    submission.Category,
		Tags:        submission.Tags,
		IsPublic:    true,
	}
	if err := s.promptRepo.Create(prompt); err != nil {
		return nil, fmt.Errorf("failed to publish prompt: %w", err)
	}
	if err := s.repo.UpdateStatus(submission.ID, models.SubmissionStatusApproved); err != nil {
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	submission.Status = models.SubmissionStatusApproved
	return &ApproveSubmissionResponse{
		Submission: s.toResponse(submission),
		Prompt:     toPromptResponse(prompt),
	}, nil
}

// Reject marks a pending submission rejected
func (s *SubmissionService) Reject(userID, submissionID uuid.UUID) (*SubmissionResponse, error) {
	if err := s.requireModerator(userID); err != nil {
		return nil, err
	}
	submission, err := s.pendingSubmission(submissionID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(submission.ID, models.SubmissionStatusRejected); err != nil {
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}
	submission.Status = models.SubmissionStatusRejected
	resp := s.toResponse(submission)
	return &resp, nil
}

func (s *SubmissionService) pendingSubmission(id uuid.UUID) (*models.CommunitySubmission, error) {
	submission, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSubmissionNotFound
	}
	if submission.Status != models.SubmissionStatusPending {
		return nil, apperrors.ErrSubmissionNotPending
	}
	return submission, nil
}

// toResponse converts a CommunitySubmission model to API response
func (s *SubmissionService) toResponse(submission *models.CommunitySubmission) SubmissionResponse {
	tags := submission.Tags
	if tags == nil {
		tags = []string{}
	}
	return SubmissionResponse{
		ID:             submission.ID,
		Title:          submission.Title,
		Description:    submission.Description,
		Content:        submission.Content,
		Category:       submission.Category,
		Tags:           tags,
		SubmitterEmail: submission.SubmitterEmail,
		Status:         submission.Status,
		CreatedAt:      submission.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
