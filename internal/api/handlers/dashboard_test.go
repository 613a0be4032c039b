package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptvault-backend/internal/api/handlers"
	"promptvault-backend/internal/auth"
	"promptvault-backend/internal/mocks"
	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockDashSvc *mocks.MockDashboardServiceInterface
	handler     *handlers.DashboardHandler
	router      *gin.Engine
	userID      uuid.UUID
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDashSvc = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDashboardHandler(suite.mockDashSvc)
	suite.userID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserID, suite.userID.String())
		c.Next()
	})
	suite.router.GET("/dashboard", suite.handler.GetDashboard)
}

func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_Success() {
	resp := &service.DashboardResponse{
		Stats: service.DashboardStats{
			TotalPrompts:   12,
			TeamMembers:    4,
			TotalUses:      240,
			AvgSuccessRate: 83,
			AvgRating:      4.2,
		},
		CategoryStats: []service.CategoryStat{
			{Category: "Agile", PromptCount: 5, TotalUses: 120, FeedbackCount: 10, SuccessRate: 90},
		},
		TopPrompts: []service.TopPrompt{
			{ID: uuid.New(), Title: "Sprint Retro Facilitator", Category: "Agile", UseCount: 88},
		},
		RecentActivity: []service.ActivityEntry{
			{ID: uuid.NewString(), Type: service.ActivitySaved, UserName: "Team member", PromptTitle: "Sprint Retro Facilitator", Detail: "saved a prompt", TimeAgo: "2h ago"},
		},
	}
	suite.mockDashSvc.EXPECT().GetDashboard(suite.userID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.DashboardResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 12, got.Stats.TotalPrompts)
	assert.Equal(suite.T(), 4.2, got.Stats.AvgRating)
	assert.Len(suite.T(), got.CategoryStats, 1)
	assert.Len(suite.T(), got.TopPrompts, 1)
	assert.Equal(suite.T(), "saved a prompt", got.RecentActivity[0].Detail)
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_ServiceError() {
	suite.mockDashSvc.EXPECT().GetDashboard(suite.userID).Return(nil, errors.New("db failure"))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func (suite *DashboardHandlerTestSuite) TestGetDashboard_Unauthenticated() {
	router := gin.New()
	router.GET("/dashboard", suite.handler.GetDashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
