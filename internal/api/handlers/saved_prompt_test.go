package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptvault-backend/internal/api/handlers"
	"promptvault-backend/internal/auth"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/mocks"
	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SavedPromptHandlerTestSuite defines the test suite for SavedPromptHandler
type SavedPromptHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSavedSvc *mocks.MockSavedPromptServiceInterface
	handler      *handlers.SavedPromptHandler
	router       *gin.Engine
	userID       uuid.UUID
}

func (suite *SavedPromptHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSavedSvc = mocks.NewMockSavedPromptServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSavedPromptHandler(suite.mockSavedSvc)
	suite.userID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserID, suite.userID.String())
		c.Next()
	})
	suite.router.GET("/saved-prompts", suite.handler.ListSavedPrompts)
	suite.router.POST("/saved-prompts", suite.handler.SavePrompt)
	suite.router.PATCH("/saved-prompts/:id/folder", suite.handler.MoveSavedPrompt)
	suite.router.DELETE("/saved-prompts/:id", suite.handler.DeleteSavedPrompt)
}

func (suite *SavedPromptHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SavedPromptHandlerTestSuite) TestListSavedPrompts_Success() {
	saved := []service.SavedPromptResponse{
		{ID: uuid.New(), PromptID: uuid.New(), Prompt: &service.PromptResponse{Title: "Backlog Groomer"}},
	}
	suite.mockSavedSvc.EXPECT().GetSavedPrompts(suite.userID).Return(saved, nil)

	req := httptest.NewRequest(http.MethodGet, "/saved-prompts", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.SavedPromptResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "Backlog Groomer", got[0].Prompt.Title)
}

func (suite *SavedPromptHandlerTestSuite) TestSavePrompt_Success() {
	promptID := uuid.New()
	resp := &service.SavedPromptResponse{ID: uuid.New(), PromptID: promptID}
	suite.mockSavedSvc.EXPECT().
		SavePrompt(suite.userID, &service.SavePromptRequest{PromptID: promptID}).
		Return(resp, nil)

	payload, _ := json.Marshal(map[string]string{"prompt_id": promptID.String()})
	req := httptest.NewRequest(http.MethodPost, "/saved-prompts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.SavedPromptResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), promptID, got.PromptID)
}

func (suite *SavedPromptHandlerTestSuite) TestSavePrompt_Duplicate() {
	promptID := uuid.New()
	suite.mockSavedSvc.EXPECT().
		SavePrompt(suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrPromptAlreadySaved)

	payload, _ := json.Marshal(map[string]string{"prompt_id": promptID.String()})
	req := httptest.NewRequest(http.MethodPost, "/saved-prompts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *SavedPromptHandlerTestSuite) TestMoveSavedPrompt_ToFolder() {
	savedID := uuid.New()
	folderID := uuid.New()
	resp := &service.SavedPromptResponse{ID: savedID, FolderID: &folderID}
	suite.mockSavedSvc.EXPECT().
		MoveToFolder(suite.userID, savedID, &service.MoveSavedPromptRequest{FolderID: &folderID}).
		Return(resp, nil)

	payload, _ := json.Marshal(map[string]string{"folder_id": folderID.String()})
	req := httptest.NewRequest(http.MethodPatch, "/saved-prompts/"+savedID.String()+"/folder", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.SavedPromptResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), folderID, *got.FolderID)
}

func (suite *SavedPromptHandlerTestSuite) TestMoveSavedPrompt_BackToUnsorted() {
	savedID := uuid.New()
	resp := &service.SavedPromptResponse{ID: savedID}
	// Null folder_id clears the assignment
	suite.mockSavedSvc.EXPECT().
		MoveToFolder(suite.userID, savedID, &service.MoveSavedPromptRequest{FolderID: nil}).
		Return(resp, nil)

	req := httptest.NewRequest(http.MethodPatch, "/saved-prompts/"+savedID.String()+"/folder", bytes.NewBufferString(`{"folder_id": null}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SavedPromptHandlerTestSuite) TestDeleteSavedPrompt_Success() {
	savedID := uuid.New()
	suite.mockSavedSvc.EXPECT().Unsave(suite.userID, savedID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/saved-prompts/"+savedID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *SavedPromptHandlerTestSuite) TestDeleteSavedPrompt_NotOwned() {
	savedID := uuid.New()
	suite.mockSavedSvc.EXPECT().
		Unsave(suite.userID, savedID).
		Return(apperrors.ErrSavedPromptNotOwned)

	req := httptest.NewRequest(http.MethodDelete, "/saved-prompts/"+savedID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func TestSavedPromptHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SavedPromptHandlerTestSuite))
}
