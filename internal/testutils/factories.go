package testutils

import (
	"fmt"
	"time"

	"event-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

// CollegeFactory provides methods to create test College data
type CollegeFactory struct{}

// NewCollegeFactory creates a new CollegeFactory
func NewCollegeFactory() *CollegeFactory {
	return &CollegeFactory{}
}

// Create creates a test College with default values
func (f *CollegeFactory) Create() *models.College {
	return &models.College{
		BaseModel: models.BaseModel{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Engineering College",
	}
}

// WithName sets a custom name for the college
func (f *CollegeFactory) WithName(name string) *models.College {
	college := f.Create()
	college.Name = name
	return college
}

// RegistrationFactory provides methods to create test Registration data
type RegistrationFactory struct{}

// NewRegistrationFactory creates a new RegistrationFactory
func NewRegistrationFactory() *RegistrationFactory {
	return &RegistrationFactory{}
}

// Create creates a test Registration with default values. Emails are
// uniquified so back-to-back factory rows do not trip the unique index.
func (f *RegistrationFactory) Create() *models.Registration {
	unique := uuid.New().String()[:8]

	return &models.Registration{
		BaseModel: models.BaseModel{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:          "Dr. A. Verma",
		Designation:   models.DesignationPrincipal,
		Phone:         "+91-98765-43210",
		Email:         fmt.Sprintf("a.verma-%s@test.edu", unique),
		Photo:         []byte("fake-jpeg-bytes"),
		PhotoMimeType: "image/jpeg",
		Reason:        "Presenting institutional research initiatives",
		EventID:       1,
	}
}

// WithDesignation sets a custom designation for the registration
func (f *RegistrationFactory) WithDesignation(designation models.Designation) *models.Registration {
	registration := f.Create()
	registration.Designation = designation
	return registration
}

// WithCollege links the registration to a college row
func (f *RegistrationFactory) WithCollege(collegeID uint) *models.Registration {
	registration := f.Create()
	registration.CollegeID = &collegeID
	return registration
}

// WithCommitteeMember makes a Council Member registration with the given text
func (f *RegistrationFactory) WithCommitteeMember(text string) *models.Registration {
	registration := f.WithDesignation(models.DesignationCouncilMember)
	registration.CommitteeMember = &text
	return registration
}

// WithEmail sets a custom email for the registration
func (f *RegistrationFactory) WithEmail(email string) *models.Registration {
	registration := f.Create()
	registration.Email = email
	return registration
}

// WithEventID sets a custom sequence number for the registration
func (f *RegistrationFactory) WithEventID(eventID int) *models.Registration {
	registration := f.Create()
	registration.EventID = eventID
	return registration
}

// FactorySet provides access to all factories
type FactorySet struct {
	College      *CollegeFactory
	Registration *RegistrationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		College:      NewCollegeFactory(),
		Registration: NewRegistrationFactory(),
	}
}
