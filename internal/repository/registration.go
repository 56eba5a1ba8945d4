package repository

import (
	"errors"

	"event-registration-backend/internal/database/models"
	apperrors "event-registration-backend/internal/errors"

	"gorm.io/gorm"
)

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create persists a new registration. A unique-index violation on email is
// reported as the same conflict the pre-insert check produces, so concurrent
// duplicate submissions cannot slip past the check-then-insert fast path.
func (r *RegistrationRepository) Create(registration *models.Registration) error {
	err := r.db.Create(registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrRegistrationExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a registration by ID
func (r *RegistrationRepository) GetByID(id uint) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.Preload("College").First(&registration, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// ExistsByEmail reports whether a registration with the given email exists
func (r *RegistrationRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAll retrieves registrations with pagination, newest first
func (r *RegistrationRepository) GetAll(limit, offset int) ([]models.Registration, int64, error) {
	var registrations []models.Registration
	var total int64

	if err := r.db.Model(&models.Registration{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("College").Order("created_at desc").Limit(limit).Offset(offset).Find(&registrations).Error
	if err != nil {
		return nil, 0, err
	}

	return registrations, total, nil
}

// Count returns the number of persisted registrations
func (r *RegistrationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// NextEventID atomically allocates the next event sequence number. The
// single-row upsert is safe under concurrent submissions; numbers are never
// reused, even when a registration is later deleted by hand.
func (r *RegistrationRepository) NextEventID() (int, error) {
	var value int64
	err := r.db.Raw(`
		INSERT INTO registration_counters (id, value) VALUES (1, 1)
		ON CONFLICT (id) DO UPDATE SET value = registration_counters.value + 1
		RETURNING value`).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return int(value), nil
}

// FlagDelivery marks a registration whose confirmation email failed so it can
// be picked up for manual follow-up.
func (r *RegistrationRepository) FlagDelivery(id uint) error {
	return r.db.Model(&models.Registration{}).Where("id = ?", id).
		Update("delivery_flagged", true).Error
}
