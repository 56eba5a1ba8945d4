package routes

import (
	"event-registration-backend/internal/api/handlers"
	"event-registration-backend/internal/api/middleware"
	"event-registration-backend/internal/config"
	"event-registration-backend/internal/idcard"
	"event-registration-backend/internal/mailer"
	"event-registration-backend/internal/repository"
	"event-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The mail sender
// and card renderer are constructed once at startup and injected here so
// tests can substitute fakes.
func SetupRoutes(db *gorm.DB, cfg *config.Config, sender mailer.Sender, renderer idcard.Renderer) *gin.Engine {
	// Create router
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	collegeRepo := repository.NewCollegeRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	// Initialize services
	collegeService := service.NewCollegeService(collegeRepo)
	registrationService := service.NewRegistrationService(registrationRepo, collegeRepo, sender, renderer, validator, cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	collegeHandler := handlers.NewCollegeHandler(collegeService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, cfg.MaxUploadBytes)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/register", middleware.BodyLimit(cfg.MaxUploadBytes), registrationHandler.Register)
		v1.GET("/registrations", registrationHandler.List)
		v1.GET("/colleges", collegeHandler.List)
	}

	return router
}
