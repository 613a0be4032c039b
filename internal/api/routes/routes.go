package routes

import (
	"log"

	"promptvault-backend/internal/api/handlers"
	"promptvault-backend/internal/api/middleware"
	"promptvault-backend/internal/auth"
	"promptvault-backend/internal/config"
	"promptvault-backend/internal/logger"
	"promptvault-backend/internal/repository"
	"promptvault-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	promptRepo := repository.NewPromptRepository(db)
	savedPromptRepo := repository.NewSavedPromptRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	// Initialize services
	promptService := service.NewPromptService(promptRepo, savedPromptRepo, teamMemberRepo, submissionRepo, validator)
	savedPromptService := service.NewSavedPromptService(savedPromptRepo, promptRepo, folderRepo, validator)
	folderService := service.NewFolderService(folderRepo, savedPromptRepo, validator)
	ratingService := service.NewRatingService(ratingRepo, promptRepo, validator)
	feedbackService := service.NewFeedbackService(feedbackRepo, promptRepo)
	dashboardService := service.NewDashboardService(promptRepo, savedPromptRepo, teamMemberRepo, feedbackRepo, ratingRepo)
	profileService := service.NewProfileService(profileRepo, validator)
	submissionService := service.NewSubmissionService(submissionRepo, promptRepo, teamMemberRepo)
	assistantService := service.NewAssistantService(cfg, logger.New())

	// Initialize token verification
	var authMiddleware *auth.AuthMiddleware
	verifier, err := auth.NewVerifierFromConfig(cfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize token verification: %v", err)
	} else {
		authMiddleware = auth.NewAuthMiddleware(verifier)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	promptHandler := handlers.NewPromptHandler(promptService, savedPromptService)
	savedPromptHandler := handlers.NewSavedPromptHandler(savedPromptService)
	folderHandler := handlers.NewFolderHandler(folderService)
	engagementHandler := handlers.NewEngagementHandler(ratingService, feedbackService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	profileHandler := handlers.NewProfileHandler(profileService)
	adminHandler := handlers.NewAdminHandler(submissionService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Public routes personalize when a valid token is present but never
	// require one. Anonymous contributions land in the moderation queue.
	public := v1.Group("")
	if authMiddleware != nil {
		public.Use(authMiddleware.OptionalAuth())
	}
	{
		public.GET("/prompts/community", promptHandler.ListCommunityPrompts)
		public.GET("/prompts/:id", promptHandler.GetPrompt)
		public.POST("/prompts", promptHandler.ContributePrompt)
	}

	// Everything else requires a valid Supabase token
	authed := v1.Group("")
	if authMiddleware != nil {
		authed.Use(authMiddleware.RequireAuth())
	}
	{
		// Prompt routes
		authed.GET("/prompts/library", promptHandler.ListLibraryPrompts)
		authed.POST("/prompts/:id/use", promptHandler.RecordUse)
		authed.PUT("/prompts/:id/rating", engagementHandler.RatePrompt)
		authed.PUT("/prompts/:id/feedback", engagementHandler.SubmitFeedback)

		// Saved prompt routes
		savedPrompts := authed.Group("/saved-prompts")
		{
			savedPrompts.GET("", savedPromptHandler.ListSavedPrompts)
			savedPrompts.POST("", savedPromptHandler.SavePrompt)
			savedPrompts.PATCH("/:id/folder", savedPromptHandler.MoveSavedPrompt)
			savedPrompts.DELETE("/:id", savedPromptHandler.DeleteSavedPrompt)
		}

		// Folder routes
		folders := authed.Group("/folders")
		{
			folders.GET("", folderHandler.ListFolders)
			folders.POST("", folderHandler.CreateFolder)
			folders.PATCH("/:id", folderHandler.RenameFolder)
			folders.DELETE("/:id", folderHandler.DeleteFolder)
		}

		// Dashboard and profile routes
		authed.GET("/dashboard", dashboardHandler.GetDashboard)
		authed.GET("/profile", profileHandler.GetProfile)
		authed.PATCH("/profile", profileHandler.UpdateProfile)

		// Assistant routes
		authed.POST("/assistant/chat", assistantHandler.Chat)

		// Moderation routes
		admin := authed.Group("/admin")
		{
			admin.GET("/submissions", adminHandler.ListSubmissions)
			admin.POST("/submissions/:id/approve", adminHandler.ApproveSubmission)
			admin.POST("/submissions/:id/reject", adminHandler.RejectSubmission)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
