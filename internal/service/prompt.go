package service

import (
	"fmt"

	"promptvault-backend/internal/database/models"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PromptService handles business logic for prompts and contributions
type PromptService struct {
	repo           repository.PromptRepositoryInterface
	savedRepo      repository.SavedPromptRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
	submissionRepo repository.SubmissionRepositoryInterface
	validator      *validator.Validate
}

// Ensure PromptService implements PromptServiceInterface
var _ PromptServiceInterface = (*PromptService)(nil)

// NewPromptService creates a new PromptService
func NewPromptService(
	repo repository.PromptRepositoryInterface,
	savedRepo repository.SavedPromptRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
	submissionRepo repository.SubmissionRepositoryInterface,
	validator *validator.Validate,
) *PromptService {
	return &PromptService{
		repo:           repo,
		savedRepo:      savedRepo,
		teamMemberRepo: teamMemberRepo,
		submissionRepo: submissionRepo,
		validator:      validator,
	}
}

// PromptResponse represents a prompt in API responses
type PromptResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	AuthorID    *uuid.UUID `json:"author_id,omitempty"`
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
	IsPublic    bool       `json:"is_public"`
	UseCount    int        `json:"use_count"`
	CreatedAt   string     `json:"created_at"`
}

// PromptListResponse represents a filtered prompt listing
type PromptListResponse struct {
	Prompts []PromptResponse `json:"prompts"`
	Total   int              `json:"total"`
}

// KanbanResponse represents the kanban view of a filtered listing
type KanbanResponse struct {
	Columns []KanbanColumnResponse `json:"columns"`
}

// KanbanColumnResponse is one category column in the kanban view
type KanbanColumnResponse struct {
	Category string           `json:"category"`
	Prompts  []PromptResponse `json:"prompts"`
}

// ContributePromptRequest represents a prompt contribution. Team members
// publish directly into their team library; everyone else lands in the
// moderation queue.
type ContributePromptRequest struct {
	Title          string   `json:"title" validate:"required,min=1,max=200"`
	Description    string   `json:"description" validate:"required,max=500"`
	Content        string   `json:"content" validate:"required"`
	Category       string   `json:"category" validate:"required,max=50"`
	Tags           []string `json:"tags"`
	SubmitterEmail string   `json:"submitter_email" validate:"omitempty,email,max=255"`
}

// ContributePromptResponse tells the caller where their contribution went
type ContributePromptResponse struct {
	Published    bool            `json:"published"`
	Prompt       *PromptResponse `json:"prompt,omitempty"`
	SubmissionID *uuid.UUID      `json:"submission_id,omitempty"`
}

// validateQuery rejects malformed sort parameters before any filtering runs
func validateQuery(query PromptQuery) error {
	if query.SortColumn != "" && !query.SortColumn.IsValid() {
		return apperrors.ErrInvalidSortColumn
	}
	if query.SortDirection != "" && !query.SortDirection.IsValid() {
		return apperrors.ErrInvalidSortColumn
	}
	if query.Folder != "" && query.Folder != FolderFilterUnsorted {
		if _, err := uuid.Parse(query.Folder); err != nil {
			return apperrors.ErrInvalidFolderFilter
		}
	}
	return nil
}

// GetCommunityPrompts lists public prompts through the filter and sort
// engine. Folder filtering applies only for authenticated callers, whose
// saved-prompt mappings are passed in; anonymous callers see the unfiltered
// community pool.
func (s *PromptService) GetCommunityPrompts(query PromptQuery, mappings []FolderMapping) (*PromptListResponse, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	prompts, err := s.repo.GetCommunity()
	if err != nil {
		return nil, fmt.Errorf("failed to get community prompts: %w", err)
	}
	return s.toListResponse(prompts, query, mappings), nil
}

// GetLibraryPrompts lists the caller's team prompts through the filter and
// sort engine. Callers without a team membership get an error.
func (s *PromptService) GetLibraryPrompts(userID uuid.UUID, query PromptQuery, mappings []FolderMapping) (*PromptListResponse, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	membership, err := s.teamMemberRepo.GetByUser(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotAssignedToTeam
	}
	prompts, err := s.repo.GetByTeam(membership.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team prompts: %w", err)
	}
	return s.toListResponse(prompts, query, mappings), nil
}

// GetCommunityKanban is the community listing regrouped into category
// columns, preserving the caller-supplied category order and dropping empty
// columns.
func (s *PromptService) GetCommunityKanban(query PromptQuery, mappings []FolderMapping, categories []string) (*KanbanResponse, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	prompts, err := s.repo.GetCommunity()
	if err != nil {
		return nil, fmt.Errorf("failed to get community prompts: %w", err)
	}
	return s.toKanbanResponse(prompts, query, mappings, categories), nil
}

// GetLibraryKanban is the team library regrouped into category columns
func (s *PromptService) GetLibraryKanban(userID uuid.UUID, query PromptQuery, mappings []FolderMapping, categories []string) (*KanbanResponse, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	membership, err := s.teamMemberRepo.GetByUser(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotAssignedToTeam
	}
	prompts, err := s.repo.GetByTeam(membership.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team prompts: %w", err)
	}
	return s.toKanbanResponse(prompts, query, mappings, categories), nil
}

// GetPrompt retrieves a single prompt by ID
func (s *PromptService) GetPrompt(id uuid.UUID) (*PromptResponse, error) {
	prompt, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrPromptNotFound
	}
	resp := toPromptResponse(prompt)
	return &resp, nil
}

// RecordUse increments a prompt's use counter. The counter only ever moves
// up; there is no undo.
func (s *PromptService) RecordUse(id uuid.UUID) error {
	if err := s.repo.IncrementUseCount(id); err != nil {
		return apperrors.ErrPromptNotFound
	}
	return nil
}

// Contribute routes a prompt contribution. Members of a team get it
// published into their private library immediately; callers without a team
// (or anonymous callers, with a nil userID) are queued for moderation.
func (s *PromptService) Contribute(userID *uuid.UUID, req *ContributePromptRequest) (*ContributePromptResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if userID != nil {
		membership, err := s.teamMemberRepo.GetByUser(*userID)
		if err == nil {
			prompt := &models.Prompt{
				Title:       req.Title,
				Description: req.Description,
				Content:     req.Content,
				Category:    req.Category,
				Tags:        req.Tags,
				AuthorID:    userID,
				TeamID:      &membership.TeamID,
				IsPublic:    false,
			}
			if err := s.repo.Create(prompt); err != nil {
				return nil, fmt.Errorf("failed to create prompt: %w", err)
			}
			resp := toPromptResponse(prompt)
			return &ContributePromptResponse{Published: true, Prompt: &resp}, nil
		}
	}

	submission := &models.CommunitySubmission{
		Title:          req.Title,
		Description:    req.Description,
		Content:        req.Content,
		Category:       req.Category,
		Tags:           req.Tags,
		SubmitterEmail: req.SubmitterEmail,
		Status:         models.SubmissionStatusPending,
	}
	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return &ContributePromptResponse{Published: false, SubmissionID: &submission.ID}, nil
}

// applyQuery runs the filter and sort engine over a prompt set
func applyQuery(prompts []models.Prompt, query PromptQuery, mappings []FolderMapping) []models.Prompt {
	filtered := FilterPrompts(prompts, query, mappings)
	if query.SortColumn == "" {
		return filtered
	}
	direction := query.SortDirection
	if direction == "" {
		direction = SortAsc
	}
	return SortPrompts(filtered, query.SortColumn, direction)
}

func (s *PromptService) toListResponse(prompts []models.Prompt, query PromptQuery, mappings []FolderMapping) *PromptListResponse {
	filtered := applyQuery(prompts, query, mappings)
	responses := make([]PromptResponse, len(filtered))
	for i := range filtered {
		responses[i] = toPromptResponse(&filtered[i])
	}
	return &PromptListResponse{Prompts: responses, Total: len(responses)}
}

func (s *PromptService) toKanbanResponse(prompts []models.Prompt, query PromptQuery, mappings []FolderMapping, categories []string) *KanbanResponse {
	columns := GroupByCategory(applyQuery(prompts, query, mappings), categories)
	resp := &KanbanResponse{Columns: make([]KanbanColumnResponse, len(columns))}
	for i, col := range columns {
		out := KanbanColumnResponse{Category: col.Category, Prompts: make([]PromptResponse, len(col.Prompts))}
		for j := range col.Prompts {
			out.Prompts[j] = toPromptResponse(&col.Prompts[j])
		}
		resp.Columns[i] = out
	}
	return resp
}

// toPromptResponse converts a Prompt model to API response
func toPromptResponse(prompt *models.Prompt) PromptResponse {
	tags := prompt.Tags
	if tags == nil {
		tags = []string{}
	}
	return PromptResponse{
		ID:          prompt.ID,
		Title:       prompt.Title,
		Description: prompt.Description,
		Content:     prompt.Content,
		Category:    prompt.Category,
		Tags:        tags,
		AuthorID:    prompt.AuthorID,
		TeamID:      prompt.TeamID,
		IsPublic:    prompt.IsPublic,
		UseCount:    prompt.UseCount,
		CreatedAt:   prompt.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
