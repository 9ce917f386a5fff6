package server

import (
	"context"
	_ "globe-api/docs" // This will be generated
	"globe-api/internal/db"
	"globe-api/internal/handlers"
	"globe-api/internal/logger"
	"globe-api/internal/services"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	healthHandler      *handlers.HealthHandler
	globeHandler       *handlers.GloBEHandler
	safeHarbourHandler *handlers.SafeHarbourHandler
	deadlineHandler    *handlers.DeadlineHandler
	girHandler         *handlers.GIRHandler
	referenceHandler   *handlers.ReferenceHandler

	reminderService *services.ReminderService

	// Database
	dbQueries *db.Queries
)

func InitializeHandlers() {
	// Get database connection string from environment
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	// Create a connection pool using pgxpool
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	// Create the connection pool
	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	// Create queries instance with the connection pool
	dbQueries = db.New(connPool)

	resendAPIKey := os.Getenv("RESEND_API_KEY")
	if resendAPIKey == "" {
		logger.Fatal("RESEND_API_KEY environment variable is required")
	}

	reminderFromEmail := os.Getenv("REMINDER_FROM_EMAIL")
	if reminderFromEmail == "" {
		reminderFromEmail = "reminders@globe-api.local"
	}
	reminderFromName := os.Getenv("REMINDER_FROM_NAME")
	if reminderFromName == "" {
		reminderFromName = "GloBE Compliance"
	}

	reminderService = services.NewReminderService(resendAPIKey, reminderFromEmail, reminderFromName, logger.Log)

	commonServices := handlers.NewCommonServices(dbQueries)

	// API Handler initialization
	healthHandler = handlers.NewHealthHandler()
	globeHandler = handlers.NewGloBEHandler(commonServices)
	safeHarbourHandler = handlers.NewSafeHarbourHandler(commonServices)
	deadlineHandler = handlers.NewDeadlineHandler(commonServices, reminderService)
	girHandler = handlers.NewGIRHandler(commonServices)
	referenceHandler = handlers.NewReferenceHandler(commonServices)
}

func InitializeRoutes(router *gin.Engine) {
	// Initialize logger first
	logger.InitLogger()

	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", healthHandler.GetHealth)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Single-jurisdiction top-up tax calculator
		globeGroup := v1.Group("/globe")
		{
			globeGroup.POST("/compute", globeHandler.ComputeGloBE)
			globeGroup.GET("/calculations", globeHandler.ListGloBECalculations)
			globeGroup.POST("/calculations", globeHandler.CreateGloBECalculation)
			globeGroup.GET("/calculations/:calculation_id", globeHandler.GetGloBECalculation)
			globeGroup.PUT("/calculations/:calculation_id", globeHandler.UpdateGloBECalculation)
			globeGroup.DELETE("/calculations/:calculation_id", globeHandler.DeleteGloBECalculation)
		}

		// Transitional CbCR safe harbour qualifier
		safeHarbour := v1.Group("/safe-harbour")
		{
			safeHarbour.POST("/evaluate", safeHarbourHandler.EvaluateSafeHarbour)
			safeHarbour.GET("/assessments", safeHarbourHandler.ListSafeHarbourAssessments)
			safeHarbour.POST("/assessments", safeHarbourHandler.CreateSafeHarbourAssessment)
			safeHarbour.GET("/assessments/:assessment_id", safeHarbourHandler.GetSafeHarbourAssessment)
			safeHarbour.PUT("/assessments/:assessment_id", safeHarbourHandler.UpdateSafeHarbourAssessment)
			safeHarbour.DELETE("/assessments/:assessment_id", safeHarbourHandler.DeleteSafeHarbourAssessment)
		}

		// GIR filing deadline calculator
		deadlines := v1.Group("/deadlines")
		{
			deadlines.POST("/compute", deadlineHandler.ComputeDeadline)
			deadlines.GET("", deadlineHandler.ListDeadlineCalculations)
			deadlines.POST("", deadlineHandler.CreateDeadlineCalculation)
			deadlines.GET("/:deadline_id", deadlineHandler.GetDeadlineCalculation)
			deadlines.PUT("/:deadline_id", deadlineHandler.UpdateDeadlineCalculation)
			deadlines.DELETE("/:deadline_id", deadlineHandler.DeleteDeadlineCalculation)
			deadlines.POST("/:deadline_id/remind", deadlineHandler.SendDeadlineReminder)
		}

		// GIR practice sessions
		gir := v1.Group("/gir")
		{
			gir.POST("/compute", girHandler.ComputeGIR)
			gir.GET("/sessions", girHandler.ListGIRPracticeSessions)
			gir.POST("/sessions", girHandler.CreateGIRPracticeSession)
			gir.GET("/sessions/:session_id", girHandler.GetGIRPracticeSession)
			gir.PUT("/sessions/:session_id", girHandler.UpdateGIRPracticeSession)
			gir.DELETE("/sessions/:session_id", girHandler.DeleteGIRPracticeSession)
		}

		// Reference data
		v1.GET("/jurisdictions", referenceHandler.ListJurisdictions)
		v1.GET("/jurisdictions/:code", referenceHandler.GetJurisdiction)
		v1.GET("/rates/sbie", referenceHandler.GetSBIESchedule)
		v1.GET("/rates/transition", referenceHandler.GetTransitionRates)
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Get exposed headers from environment variable
	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
