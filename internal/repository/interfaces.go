package repository

import (
	"event-registration-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CollegeRepositoryInterface defines the interface for college repository operations
type CollegeRepositoryInterface interface {
	Create(college *models.College) error
	GetByID(id uint) (*models.College, error)
	GetByName(name string) (*models.College, error)
	GetAll(limit, offset int) ([]models.College, int64, error)
}

// RegistrationRepositoryInterface defines the interface for registration repository operations
type RegistrationRepositoryInterface interface {
	Create(registration *models.Registration) error
	GetByID(id uint) (*models.Registration, error)
	ExistsByEmail(email string) (bool, error)
	GetAll(limit, offset int) ([]models.Registration, int64, error)
	Count() (int64, error)
	NextEventID() (int, error)
	FlagDelivery(id uint) error
}
