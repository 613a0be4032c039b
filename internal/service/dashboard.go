package service

import (
	"fmt"
	"time"

	"promptvault-backend/internal/database/models"
	"promptvault-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	topPromptsLimit     = 10
	recentActivityLimit = 10
)

// DashboardService assembles the team dashboard from prompt, membership,
// feedback, rating and saved-prompt data
type DashboardService struct {
	promptRepo     repository.PromptRepositoryInterface
	savedRepo      repository.SavedPromptRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
	feedbackRepo   repository.FeedbackRepositoryInterface
	ratingRepo     repository.RatingRepositoryInterface
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	promptRepo repository.PromptRepositoryInterface,
	savedRepo repository.SavedPromptRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
	feedbackRepo repository.FeedbackRepositoryInterface,
	ratingRepo repository.RatingRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		promptRepo:     promptRepo,
		savedRepo:      savedRepo,
		teamMemberRepo: teamMemberRepo,
		feedbackRepo:   feedbackRepo,
		ratingRepo:     ratingRepo,
	}
}

// DashboardResponse is the full dashboard payload
type DashboardResponse struct {
	Stats          DashboardStats  `json:"stats"`
	CategoryStats  []CategoryStat  `json:"category_stats"`
	TopPrompts     []TopPrompt     `json:"top_prompts"`
	RecentActivity []ActivityEntry `json:"recent_activity"`
}

// GetDashboard builds the dashboard for the given user. The prompt scope is
// the user's team library when they have one, plus the community pool; users
// without a team see community data only, with a member count of 1.
func (s *DashboardService) GetDashboard(userID uuid.UUID) (*DashboardResponse, error) {
	prompts, memberCount, err := s.scopedPrompts(userID)
	if err != nil {
		return nil, err
	}

	promptIDs := make([]uuid.UUID, len(prompts))
	for i, p := range prompts {
		promptIDs[i] = p.ID
	}

	feedback, err := s.feedbackRepo.GetByPromptIDs(promptIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	ratings, err := s.ratingRepo.GetByPromptIDs(promptIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}
	recentSaves, err := s.savedRepo.GetRecent(recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent saves: %w", err)
	}

	return &DashboardResponse{
		Stats:          ComputeDashboardStats(prompts, memberCount, feedback, ratings),
		CategoryStats:  ComputeCategoryStats(prompts, feedback),
		TopPrompts:     ComputeTopPrompts(prompts, feedback, ratings, topPromptsLimit),
		RecentActivity: BuildActivityFeed(recentSaves, prompts, time.Now()),
	}, nil
}

// scopedPrompts returns the prompts the dashboard aggregates over and the
// member count of the user's team (1 when teamless).
func (s *DashboardService) scopedPrompts(userID uuid.UUID) ([]models.Prompt, int, error) {
	community, err := s.promptRepo.GetCommunity()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get community prompts: %w", err)
	}

	membership, err := s.teamMemberRepo.GetByUser(userID)
	if err != nil {
		// Teamless users get the community-only view
		return community, 1, nil
	}

	teamPrompts, err := s.promptRepo.GetByTeam(membership.TeamID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get team prompts: %w", err)
	}
	count, err := s.teamMemberRepo.CountByTeam(membership.TeamID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count team members: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(teamPrompts))
	prompts := make([]models.Prompt, 0, len(teamPrompts)+len(community))
	for _, p := range teamPrompts {
		seen[p.ID] = struct{}{}
		prompts = append(prompts, p)
	}
	for _, p := range community {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		prompts = append(prompts, p)
	}
	return prompts, int(count), nil
}
