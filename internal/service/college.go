package service

import (
	"fmt"

	"event-registration-backend/internal/repository"
)

// CollegeService handles business logic for colleges
type CollegeService struct {
	repo repository.CollegeRepositoryInterface
}

// NewCollegeService creates a new college service
func NewCollegeService(repo repository.CollegeRepositoryInterface) *CollegeService {
	return &CollegeService{repo: repo}
}

// CollegeResponse represents one college in API responses
type CollegeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CollegeListResponse represents a paginated list of colleges
type CollegeListResponse struct {
	Colleges []CollegeResponse `json:"colleges"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// GetAll retrieves all colleges with pagination, for the registration form's
// college picker.
func (s *CollegeService) GetAll(page, pageSize int) (*CollegeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	colleges, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get colleges: %w", err)
	}

	responses := make([]CollegeResponse, len(colleges))
	for i, college := range colleges {
		responses[i] = CollegeResponse{ID: college.ID, Name: college.Name}
	}

	return &CollegeListResponse{
		Colleges: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
