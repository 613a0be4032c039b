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

// FolderHandlerTestSuite defines the test suite for FolderHandler
type FolderHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockFolderSvc *mocks.MockFolderServiceInterface
	handler       *handlers.FolderHandler
	router        *gin.Engine
	userID        uuid.UUID
}

func (suite *FolderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFolderSvc = mocks.NewMockFolderServiceInterface(suite.ctrl)
	suite.handler = handlers.NewFolderHandler(suite.mockFolderSvc)
	suite.userID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserID, suite.userID.String())
		c.Next()
	})
	suite.router.GET("/folders", suite.handler.ListFolders)
	suite.router.POST("/folders", suite.handler.CreateFolder)
	suite.router.PATCH("/folders/:id", suite.handler.RenameFolder)
	suite.router.DELETE("/folders/:id", suite.handler.DeleteFolder)
}

func (suite *FolderHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FolderHandlerTestSuite) TestListFolders_Success() {
	folders := []service.FolderResponse{
		{ID: uuid.New(), Name: "Sprint Planning", Color: "#3b82f6"},
		{ID: uuid.New(), Name: "Retros", Color: "#22c55e"},
	}
	suite.mockFolderSvc.EXPECT().GetFolders(suite.userID).Return(folders, nil)

	req := httptest.NewRequest(http.MethodGet, "/folders", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.FolderResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), "Sprint Planning", got[0].Name)
}

func (suite *FolderHandlerTestSuite) TestCreateFolder_Success() {
	resp := &service.FolderResponse{ID: uuid.New(), Name: "Risk Register", Color: "#ef4444"}
	suite.mockFolderSvc.EXPECT().
		CreateFolder(suite.userID, &service.CreateFolderRequest{Name: "Risk Register"}).
		Return(resp, nil)

	payload, _ := json.Marshal(map[string]string{"name": "Risk Register"})
	req := httptest.NewRequest(http.MethodPost, "/folders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.FolderResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "#ef4444", got.Color)
}

func (suite *FolderHandlerTestSuite) TestCreateFolder_EmptyName() {
	suite.mockFolderSvc.EXPECT().
		CreateFolder(suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrEmptyFolderName)

	payload, _ := json.Marshal(map[string]string{"name": "   "})
	req := httptest.NewRequest(http.MethodPost, "/folders", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "folder name must not be empty")
}

func (suite *FolderHandlerTestSuite) TestRenameFolder_Success() {
	folderID := uuid.New()
	resp := &service.FolderResponse{ID: folderID, Name: "Renamed", Color: "#3b82f6"}
	suite.mockFolderSvc.EXPECT().
		RenameFolder(suite.userID, folderID, &service.RenameFolderRequest{Name: "Renamed"}).
		Return(resp, nil)

	payload, _ := json.Marshal(map[string]string{"name": "Renamed"})
	req := httptest.NewRequest(http.MethodPatch, "/folders/"+folderID.String(), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *FolderHandlerTestSuite) TestRenameFolder_NotOwned() {
	folderID := uuid.New()
	suite.mockFolderSvc.EXPECT().
		RenameFolder(suite.userID, folderID, gomock.Any()).
		Return(nil, apperrors.ErrFolderNotOwned)

	payload, _ := json.Marshal(map[string]string{"name": "Taken"})
	req := httptest.NewRequest(http.MethodPatch, "/folders/"+folderID.String(), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *FolderHandlerTestSuite) TestDeleteFolder_Success() {
	folderID := uuid.New()
	suite.mockFolderSvc.EXPECT().DeleteFolder(suite.userID, folderID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/folders/"+folderID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *FolderHandlerTestSuite) TestDeleteFolder_NotFound() {
	folderID := uuid.New()
	suite.mockFolderSvc.EXPECT().
		DeleteFolder(suite.userID, folderID).
		Return(apperrors.ErrFolderNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/folders/"+folderID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestFolderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FolderHandlerTestSuite))
}
