package repository

import (
	"event-registration-backend/internal/database/models"

	"gorm.io/gorm"
)

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *gorm.DB
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *gorm.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// Create creates a new college
func (r *CollegeRepository) Create(college *models.College) error {
	return r.db.Create(college).Error
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(id uint) (*models.College, error) {
	var college models.College
	err := r.db.First(&college, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}

// GetByName retrieves a college by exact name match
func (r *CollegeRepository) GetByName(name string) (*models.College, error) {
	var college models.College
	err := r.db.First(&college, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}

// GetAll retrieves all colleges with pagination, ordered by name
func (r *CollegeRepository) GetAll(limit, offset int) ([]models.College, int64, error) {
	var colleges []models.College
	var total int64

	if err := r.db.Model(&models.College{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name asc").Limit(limit).Offset(offset).Find(&colleges).Error
	if err != nil {
		return nil, 0, err
	}

	return colleges, total, nil
}
