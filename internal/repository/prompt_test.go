package repository

import (
	"testing"
	"time"

	"promptvault-backend/internal/database/models"
	"promptvault-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PromptRepositoryTestSuite tests the PromptRepository
type PromptRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *PromptRepository
}

// SetupSuite runs before all tests in the suite
func (suite *PromptRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewPromptRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *PromptRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PromptRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PromptRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a prompt directly via gorm
func (suite *PromptRepositoryTestSuite) createPrompt(prompt *models.Prompt) *models.Prompt {
	err := suite.baseTestSuite.DB.Create(prompt).Error
	suite.NoError(err)
	return prompt
}

// TestGetByID tests retrieving a prompt by ID
func (suite *PromptRepositoryTestSuite) TestGetByID() {
	prompt := suite.createPrompt(suite.factories.Prompt.WithTitle("Sprint Retro Facilitator"))

	retrieved, err := suite.repo.GetByID(prompt.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(prompt.ID, retrieved.ID)
	suite.Equal("Sprint Retro Facilitator", retrieved.Title)
	suite.Equal("Planning", retrieved.Category)
}

// TestGetByIDNotFound tests retrieving a non-existent prompt
func (suite *PromptRepositoryTestSuite) TestGetByIDNotFound() {
	prompt, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Nil(prompt)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetCommunity tests that only public teamless prompts come back, newest first
func (suite *PromptRepositoryTestSuite) TestGetCommunity() {
	older := suite.factories.Prompt.WithTitle("Older Community Prompt")
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	suite.createPrompt(older)

	newer := suite.factories.Prompt.WithTitle("Newer Community Prompt")
	newer.CreatedAt = time.Now().Add(-1 * time.Hour)
	suite.createPrompt(newer)

	// Team-scoped and private prompts must be excluded
	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	suite.createPrompt(suite.factories.Prompt.WithTeam(team.ID))

	private := suite.factories.Prompt.WithTitle("Unlisted Prompt")
	private.IsPublic = false
	suite.createPrompt(private)

	prompts, err := suite.repo.GetCommunity()

	suite.NoError(err)
	suite.Len(prompts, 2)
	suite.Equal("Newer Community Prompt", prompts[0].Title)
	suite.Equal("Older Community Prompt", prompts[1].Title)
}

// TestGetByTeam tests team library retrieval
func (suite *PromptRepositoryTestSuite) TestGetByTeam() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	suite.createPrompt(suite.factories.Prompt.WithTeam(team.ID))
	suite.createPrompt(suite.factories.Prompt.WithTeam(team.ID))
	suite.createPrompt(suite.factories.Prompt.Create()) // community prompt, excluded

	prompts, err := suite.repo.GetByTeam(team.ID)

	suite.NoError(err)
	suite.Len(prompts, 2)
	for _, p := range prompts {
		suite.Equal(team.ID, *p.TeamID)
	}
}

// TestGetByIDs tests batch retrieval
func (suite *PromptRepositoryTestSuite) TestGetByIDs() {
	first := suite.createPrompt(suite.factories.Prompt.WithTitle("First"))
	second := suite.createPrompt(suite.factories.Prompt.WithTitle("Second"))
	suite.createPrompt(suite.factories.Prompt.WithTitle("Third"))

	prompts, err := suite.repo.GetByIDs([]uuid.UUID{first.ID, second.ID})

	suite.NoError(err)
	suite.Len(prompts, 2)
}

// TestGetByIDsEmpty tests that an empty ID set short-circuits
func (suite *PromptRepositoryTestSuite) TestGetByIDsEmpty() {
	prompts, err := suite.repo.GetByIDs(nil)

	suite.NoError(err)
	suite.Empty(prompts)
}

// TestIncrementUseCount tests that the counter bumps atomically
func (suite *PromptRepositoryTestSuite) TestIncrementUseCount() {
	prompt := suite.createPrompt(suite.factories.Prompt.WithUseCount(5))

	err := suite.repo.IncrementUseCount(prompt.ID)
	suite.NoError(err)
	err = suite.repo.IncrementUseCount(prompt.ID)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(prompt.ID)
	suite.NoError(err)
	suite.Equal(7, retrieved.UseCount)
}

// TestIncrementUseCountNotFound tests incrementing a missing prompt
func (suite *PromptRepositoryTestSuite) TestIncrementUseCountNotFound() {
	err := suite.repo.IncrementUseCount(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestPromptRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PromptRepositoryTestSuite))
}
