package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptvault-backend/internal/api/handlers"
	"promptvault-backend/internal/auth"
	apperrors "promptvault-backend/internal/errors"
	"promptvault-backend/internal/mocks"
	"promptvault-backend/internal/database/models"
	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AdminHandlerTestSuite defines the test suite for AdminHandler
type AdminHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockSubmSvc *mocks.MockSubmissionServiceInterface
	handler     *handlers.AdminHandler
	router      *gin.Engine
	userID      uuid.UUID
}

func (suite *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSubmSvc = mocks.NewMockSubmissionServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAdminHandler(suite.mockSubmSvc)
	suite.userID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserID, suite.userID.String())
		c.Next()
	})
	suite.router.GET("/admin/submissions", suite.handler.ListSubmissions)
	suite.router.POST("/admin/submissions/:id/approve", suite.handler.ApproveSubmission)
	suite.router.POST("/admin/submissions/:id/reject", suite.handler.RejectSubmission)
}

func (suite *AdminHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AdminHandlerTestSuite) TestListSubmissions_DefaultPagination() {
	resp := &service.SubmissionListResponse{
		Submissions: []service.SubmissionResponse{
			{ID: uuid.New(), Title: "Meeting Recap", Status: models.SubmissionStatusPending},
		},
		Total:    1,
		Page:     1,
		PageSize: 50,
	}
	suite.mockSubmSvc.EXPECT().ListPending(suite.userID, 1, 50).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/submissions", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.SubmissionListResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Submissions, 1)
}

func (suite *AdminHandlerTestSuite) TestListSubmissions_CustomPagination() {
	resp := &service.SubmissionListResponse{Submissions: []service.SubmissionResponse{}, Total: 0, Page: 2, PageSize: 10}
	suite.mockSubmSvc.EXPECT().ListPending(suite.userID, 2, 10).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/submissions?page=2&page_size=10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AdminHandlerTestSuite) TestListSubmissions_Forbidden() {
	suite.mockSubmSvc.EXPECT().
		ListPending(suite.userID, 1, 50).
		Return(nil, apperrors.ErrModerationForbidden)

	req := httptest.NewRequest(http.MethodGet, "/admin/submissions", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *AdminHandlerTestSuite) TestApproveSubmission_Success() {
	submissionID := uuid.New()
	resp := &service.ApproveSubmissionResponse{
		Submission: service.SubmissionResponse{ID: submissionID, Status: models.SubmissionStatusApproved},
		Prompt:     service.PromptResponse{ID: uuid.New(), Title: "Meeting Recap", IsPublic: true},
	}
	suite.mockSubmSvc.EXPECT().Approve(suite.userID, submissionID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/submissions/"+submissionID.String()+"/approve", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ApproveSubmissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SubmissionStatusApproved, got.Submission.Status)
	assert.True(suite.T(), got.Prompt.IsPublic)
}

func (suite *AdminHandlerTestSuite) TestApproveSubmission_AlreadyReviewed() {
	submissionID := uuid.New()
	suite.mockSubmSvc.EXPECT().
		Approve(suite.userID, submissionID).
		Return(nil, apperrors.ErrSubmissionNotPending)

	req := httptest.NewRequest(http.MethodPost, "/admin/submissions/"+submissionID.String()+"/approve", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AdminHandlerTestSuite) TestRejectSubmission_Success() {
	submissionID := uuid.New()
	resp := &service.SubmissionResponse{ID: submissionID, Status: models.SubmissionStatusRejected}
	suite.mockSubmSvc.EXPECT().Reject(suite.userID, submissionID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/submissions/"+submissionID.String()+"/reject", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.SubmissionResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SubmissionStatusRejected, got.Status)
}

func (suite *AdminHandlerTestSuite) TestRejectSubmission_NotFound() {
	submissionID := uuid.New()
	suite.mockSubmSvc.EXPECT().
		Reject(suite.userID, submissionID).
		Return(nil, apperrors.ErrSubmissionNotFound)

	req := httptest.NewRequest(http.MethodPost, "/admin/submissions/"+submissionID.String()+"/reject", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestAdminHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
