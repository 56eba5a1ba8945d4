package main

import (
	"log"
	"os"

	"event-registration-backend/internal/api/routes"
	"event-registration-backend/internal/config"
	"event-registration-backend/internal/database"
	"event-registration-backend/internal/idcard"
	"event-registration-backend/internal/mailer"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "event-registration-backend/docs" // This is needed for swag
)

//	@title			Event Registration Backend API
//	@version		1.0
//	@description	Backend API for event registration: accepts attendee submissions with photo and optional research paper, emails a generated identity card, and lists registered attendees.

//	@contact.name	API Support
//	@contact.email	admin@iimstc.com

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Process-wide collaborators: one SMTP sender and one bounded renderer,
	// reused across requests.
	sender := mailer.NewSMTPSender(cfg)
	renderer := idcard.NewChromeRenderer(cfg)

	// Initialize router
	router := routes.SetupRoutes(db, cfg, sender, renderer)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
