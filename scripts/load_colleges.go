package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"event-registration-backend/internal/config"
	"event-registration-backend/internal/database"
	"event-registration-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CollegeData matches one entry of the colleges seed file
type CollegeData struct {
	Name string `yaml:"name"`
}

// CollegesFile is the seed file structure
type CollegesFile struct {
	Colleges []CollegeData `yaml:"colleges"`
}

func main() {
	log.Println("Loading college seed data from YAML...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	path := "scripts/data/colleges.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	created, skipped, err := loadColleges(db, path)
	if err != nil {
		log.Fatalf("Failed to load colleges: %v", err)
	}

	log.Printf("College seed data loaded: %d created, %d already present", created, skipped)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadColleges reads the seed file and inserts colleges that do not exist yet.
// Matching is by exact name, same as the registration workflow's lookup.
func loadColleges(db *gorm.DB, path string) (created, skipped int, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read seed file: %w", err)
	}

	var file CollegesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return 0, 0, fmt.Errorf("parse seed file: %w", err)
	}

	for _, entry := range file.Colleges {
		if entry.Name == "" {
			log.Println("Skipping college entry with empty name")
			continue
		}

		var existing models.College
		err := db.First(&existing, "name = ?", entry.Name).Error
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, skipped, fmt.Errorf("look up college %q: %w", entry.Name, err)
		}

		if err := db.Create(&models.College{Name: entry.Name}).Error; err != nil {
			return created, skipped, fmt.Errorf("create college %q: %w", entry.Name, err)
		}
		created++
	}

	return created, skipped, nil
}
