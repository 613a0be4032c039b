package testutils

import (
	"time"

	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Team",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()
	fullName := "Test User"
	// Unique email per profile to satisfy the unique index
	return &models.Profile{
		ID:        id,
		Email:     "user-" + id.String()[:8] + "@test.com",
		FullName:  &fullName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithEmail sets a custom email for the profile
func (f *ProfileFactory) WithEmail(email string) *models.Profile {
	profile := f.Create()
	profile.Email = email
	return profile
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: uuid.New(),
		UserID: uuid.New(),
		Role:   models.TeamRoleMember,
	}
}

// WithTeamAndUser links the membership to an existing team and user
func (f *TeamMemberFactory) WithTeamAndUser(teamID, userID uuid.UUID) *models.TeamMember {
	member := f.Create()
	member.TeamID = teamID
	member.UserID = userID
	return member
}

// WithRole sets a custom role for the membership
func (f *TeamMemberFactory) WithRole(teamID, userID uuid.UUID, role models.TeamRole) *models.TeamMember {
	member := f.WithTeamAndUser(teamID, userID)
	member.Role = role
	return member
}

// PromptFactory provides methods to create test Prompt data
type PromptFactory struct{}

// NewPromptFactory creates a new PromptFactory
func NewPromptFactory() *PromptFactory {
	return &PromptFactory{}
}

// Create creates a test Prompt with default values
func (f *PromptFactory) Create() *models.Prompt {
	return &models.Prompt{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Prompt",
		Description: "A test prompt for testing purposes",
		Content:     "You are a helpful assistant for project managers.",
		Category:    "Planning",
		Tags:        []string{"test"},
		IsPublic:    true,
		UseCount:    0,
	}
}

// WithTitle sets a custom title for the prompt
func (f *PromptFactory) WithTitle(title string) *models.Prompt {
	prompt := f.Create()
	prompt.Title = title
	return prompt
}

// WithCategory sets a custom category for the prompt
func (f *PromptFactory) WithCategory(category string) *models.Prompt {
	prompt := f.Create()
	prompt.Category = category
	return prompt
}

// WithTeam scopes the prompt to a team library
func (f *PromptFactory) WithTeam(teamID uuid.UUID) *models.Prompt {
	prompt := f.Create()
	prompt.TeamID = &teamID
	prompt.IsPublic = false
	return prompt
}

// WithUseCount sets a custom use count for the prompt
func (f *PromptFactory) WithUseCount(count int) *models.Prompt {
	prompt := f.Create()
	prompt.UseCount = count
	return prompt
}

// FolderFactory provides methods to create test PromptFolder data
type FolderFactory struct{}

// NewFolderFactory creates a new FolderFactory
func NewFolderFactory() *FolderFactory {
	return &FolderFactory{}
}

// Create creates a test PromptFolder with default values
func (f *FolderFactory) Create() *models.PromptFolder {
	return &models.PromptFolder{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "Test Folder",
		UserID: uuid.New(),
		Color:  "#3b82f6",
	}
}

// WithUser sets the owning user for the folder
func (f *FolderFactory) WithUser(userID uuid.UUID) *models.PromptFolder {
	folder := f.Create()
	folder.UserID = userID
	return folder
}

// WithName sets a custom name for the folder
func (f *FolderFactory) WithName(userID uuid.UUID, name string) *models.PromptFolder {
	folder := f.WithUser(userID)
	folder.Name = name
	return folder
}

// SavedPromptFactory provides methods to create test SavedPrompt data
type SavedPromptFactory struct{}

// NewSavedPromptFactory creates a new SavedPromptFactory
func NewSavedPromptFactory() *SavedPromptFactory {
	return &SavedPromptFactory{}
}

// Create creates a test SavedPrompt with default values
func (f *SavedPromptFactory) Create() *models.SavedPrompt {
	return &models.SavedPrompt{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:   uuid.New(),
		PromptID: uuid.New(),
	}
}

// WithUserAndPrompt links the save to an existing user and prompt
func (f *SavedPromptFactory) WithUserAndPrompt(userID, promptID uuid.UUID) *models.SavedPrompt {
	saved := f.Create()
	saved.UserID = userID
	saved.PromptID = promptID
	return saved
}

// WithFolder places the save into a folder
func (f *SavedPromptFactory) WithFolder(userID, promptID, folderID uuid.UUID) *models.SavedPrompt {
	saved := f.WithUserAndPrompt(userID, promptID)
	saved.FolderID = &folderID
	return saved
}

// RatingFactory provides methods to create test PromptRating data
type RatingFactory struct{}

// NewRatingFactory creates a new RatingFactory
func NewRatingFactory() *RatingFactory {
	return &RatingFactory{}
}

// Create creates a test PromptRating with default values
func (f *RatingFactory) Create() *models.PromptRating {
	return &models.PromptRating{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PromptID: uuid.New(),
		UserID:   uuid.New(),
		Rating:   4,
	}
}

// WithPromptAndUser links the rating to an existing prompt and user
func (f *RatingFactory) WithPromptAndUser(promptID, userID uuid.UUID, rating int) *models.PromptRating {
	r := f.Create()
	r.PromptID = promptID
	r.UserID = userID
	r.Rating = rating
	return r
}

// FeedbackFactory provides methods to create test PromptFeedback data
type FeedbackFactory struct{}

// NewFeedbackFactory creates a new FeedbackFactory
func NewFeedbackFactory() *FeedbackFactory {
	return &FeedbackFactory{}
}

// Create creates a test PromptFeedback with default values
func (f *FeedbackFactory) Create() *models.PromptFeedback {
	return &models.PromptFeedback{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PromptID: uuid.New(),
		UserID:   uuid.New(),
		Helpful:  true,
	}
}

// WithPromptAndUser links the feedback to an existing prompt and user
func (f *FeedbackFactory) WithPromptAndUser(promptID, userID uuid.UUID, helpful bool) *models.PromptFeedback {
	fb := f.Create()
	fb.PromptID = promptID
	fb.UserID = userID
	fb.Helpful = helpful
	return fb
}

// SubmissionFactory provides methods to create test CommunitySubmission data
type SubmissionFactory struct{}

// NewSubmissionFactory creates a new SubmissionFactory
func NewSubmissionFactory() *SubmissionFactory {
	return &SubmissionFactory{}
}

// Create creates a test CommunitySubmission with default values
func (f *SubmissionFactory) Create() *models.CommunitySubmission {
	return &models.CommunitySubmission{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Submission",
		Description: "A test submission for testing purposes",
		Content:     "You are a helpful assistant for project managers.",
		Category:    "Planning",
		Status:      models.SubmissionStatusPending,
	}
}

// WithStatus sets a custom status for the submission
func (f *SubmissionFactory) WithStatus(status models.SubmissionStatus) *models.CommunitySubmission {
	submission := f.Create()
	submission.Status = status
	return submission
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team        *TeamFactory
	Profile     *ProfileFactory
	TeamMember  *TeamMemberFactory
	Prompt      *PromptFactory
	Folder      *FolderFactory
	SavedPrompt *SavedPromptFactory
	Rating      *RatingFactory
	Feedback    *FeedbackFactory
	Submission  *SubmissionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:        NewTeamFactory(),
		Profile:     NewProfileFactory(),
		TeamMember:  NewTeamMemberFactory(),
		Prompt:      NewPromptFactory(),
		Folder:      NewFolderFactory(),
		SavedPrompt: NewSavedPromptFactory(),
		Rating:      NewRatingFactory(),
		Feedback:    NewFeedbackFactory(),
		Submission:  NewSubmissionFactory(),
	}
}

// CreateTeamWithMember creates a team, a member profile and the linking
// membership row, returning all three.
func (fs *FactorySet) CreateTeamWithMember(role models.TeamRole) (*models.Team, *models.Profile, *models.TeamMember) {
	team := fs.Team.Create()
	profile := fs.Profile.Create()
	member := fs.TeamMember.WithRole(team.ID, profile.ID, role)
	return team, profile, member
}
