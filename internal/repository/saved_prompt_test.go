package repository

import (
	"testing"

	"promptvault-backend/internal/database/models"
	"promptvault-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SavedPromptRepositoryTestSuite tests the SavedPromptRepository
type SavedPromptRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *SavedPromptRepository
}

// SetupSuite runs before all tests in the suite
func (suite *SavedPromptRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewSavedPromptRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *SavedPromptRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SavedPromptRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SavedPromptRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SavedPromptRepositoryTestSuite) createPrompt() *models.Prompt {
	prompt := suite.factories.Prompt.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(prompt).Error)
	return prompt
}

func (suite *SavedPromptRepositoryTestSuite) createSave(userID, promptID uuid.UUID) *models.SavedPrompt {
	saved := suite.factories.SavedPrompt.WithUserAndPrompt(userID, promptID)
	suite.NoError(suite.baseTestSuite.DB.Create(saved).Error)
	return saved
}

// TestCreateAndGetByUserAndPrompt tests the unique (user, prompt) lookup
func (suite *SavedPromptRepositoryTestSuite) TestCreateAndGetByUserAndPrompt() {
	userID := uuid.New()
	prompt := suite.createPrompt()
	saved := suite.createSave(userID, prompt.ID)

	retrieved, err := suite.repo.GetByUserAndPrompt(userID, prompt.ID)

	suite.NoError(err)
	suite.Equal(saved.ID, retrieved.ID)
}

// TestDuplicateSaveRejected tests the unique index on (user_id, prompt_id)
func (suite *SavedPromptRepositoryTestSuite) TestDuplicateSaveRejected() {
	userID := uuid.New()
	prompt := suite.createPrompt()
	suite.createSave(userID, prompt.ID)

	duplicate := suite.factories.SavedPrompt.WithUserAndPrompt(userID, prompt.ID)
	err := suite.repo.Create(duplicate)

	suite.Error(err)
}

// TestUpdateFolder tests folder reassignment including back to unsorted
func (suite *SavedPromptRepositoryTestSuite) TestUpdateFolder() {
	userID := uuid.New()
	prompt := suite.createPrompt()
	saved := suite.createSave(userID, prompt.ID)

	folder := suite.factories.Folder.WithUser(userID)
	suite.NoError(suite.baseTestSuite.DB.Create(folder).Error)

	err := suite.repo.UpdateFolder(saved.ID, &folder.ID)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(saved.ID)
	suite.NoError(err)
	suite.Equal(folder.ID, *retrieved.FolderID)

	// Null folder moves the save back to unsorted
	err = suite.repo.UpdateFolder(saved.ID, nil)
	suite.NoError(err)

	retrieved, err = suite.repo.GetByID(saved.ID)
	suite.NoError(err)
	suite.Nil(retrieved.FolderID)
}

// TestUpdateFolderNotFound tests reassigning a missing save
func (suite *SavedPromptRepositoryTestSuite) TestUpdateFolderNotFound() {
	err := suite.repo.UpdateFolder(uuid.New(), nil)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestClearFolderReferences tests that every save in a folder is unfiled
func (suite *SavedPromptRepositoryTestSuite) TestClearFolderReferences() {
	userID := uuid.New()
	folder := suite.factories.Folder.WithUser(userID)
	suite.NoError(suite.baseTestSuite.DB.Create(folder).Error)

	// Three saves in the folder, one outside it
	for i := 0; i < 3; i++ {
		prompt := suite.createPrompt()
		saved := suite.factories.SavedPrompt.WithFolder(userID, prompt.ID, folder.ID)
		suite.NoError(suite.baseTestSuite.DB.Create(saved).Error)
	}
	outside := suite.createSave(userID, suite.createPrompt().ID)

	err := suite.repo.ClearFolderReferences(folder.ID)
	suite.NoError(err)

	saves, err := suite.repo.GetByUser(userID)
	suite.NoError(err)
	suite.Len(saves, 4)
	for _, s := range saves {
		suite.Nil(s.FolderID)
	}
	_ = outside
}

// TestDelete tests removing a save
func (suite *SavedPromptRepositoryTestSuite) TestDelete() {
	userID := uuid.New()
	prompt := suite.createPrompt()
	saved := suite.createSave(userID, prompt.ID)

	err := suite.repo.Delete(saved.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(saved.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestSavedPromptRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SavedPromptRepositoryTestSuite))
}
