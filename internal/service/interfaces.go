package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RegistrationServiceInterface defines the interface for the registration service
type RegistrationServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error)
	List(page, pageSize int) (*RegistrationListResponse, error)
}

// CollegeServiceInterface defines the interface for the college service
type CollegeServiceInterface interface {
	GetAll(page, pageSize int) (*CollegeListResponse, error)
}
