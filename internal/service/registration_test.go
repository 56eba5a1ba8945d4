package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"event-registration-backend/internal/config"
	"event-registration-backend/internal/database/models"
	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/idcard"
	"event-registration-backend/internal/mailer"
	"event-registration-backend/internal/mocks"
	"event-registration-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RegistrationServiceTestSuite defines the test suite for RegistrationService
type RegistrationServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockRegistrationRepo *mocks.MockRegistrationRepositoryInterface
	mockCollegeRepo      *mocks.MockCollegeRepositoryInterface
	mockSender           *mocks.MockSender
	mockRenderer         *mocks.MockRenderer
	registrationService  *service.RegistrationService
	validator            *validator.Validate
	ctx                  context.Context
}

// SetupTest sets up the test suite
func (suite *RegistrationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRegistrationRepo = mocks.NewMockRegistrationRepositoryInterface(suite.ctrl)
	suite.mockCollegeRepo = mocks.NewMockCollegeRepositoryInterface(suite.ctrl)
	suite.mockSender = mocks.NewMockSender(suite.ctrl)
	suite.mockRenderer = mocks.NewMockRenderer(suite.ctrl)
	suite.validator = validator.New()
	suite.ctx = context.Background()

	suite.registrationService = suite.newService("log")
}

// TearDownTest cleans up after each test
func (suite *RegistrationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RegistrationServiceTestSuite) newService(mailFailurePolicy string) *service.RegistrationService {
	cfg := &config.Config{
		NotifyEmail:       "ops@iimstc.com",
		MailFailurePolicy: mailFailurePolicy,
	}
	return service.NewRegistrationService(
		suite.mockRegistrationRepo,
		suite.mockCollegeRepo,
		suite.mockSender,
		suite.mockRenderer,
		suite.validator,
		cfg,
	)
}

func (suite *RegistrationServiceTestSuite) validRequest() *service.RegisterRequest {
	return &service.RegisterRequest{
		Name:        "Dr. A. Verma",
		Designation: string(models.DesignationPrincipal),
		CollegeID:   "7",
		Phone:       "+91-98765-43210",
		Email:       "a.verma@test.edu",
		Reason:      "Presenting institutional research initiatives",
		Photo: &service.Upload{
			Filename: "photo.jpg",
			MimeType: "image/jpeg",
			Data:     []byte("fake-jpeg-bytes"),
		},
	}
}

// expectSuccessfulPersistence wires the repository calls shared by the happy
// paths: no duplicate email, next sequence number, and row creation.
func (suite *RegistrationServiceTestSuite) expectSuccessfulPersistence(email string, eventID int) {
	suite.mockRegistrationRepo.EXPECT().
		ExistsByEmail(email).
		Return(false, nil).
		Times(1)

	suite.mockRegistrationRepo.EXPECT().
		NextEventID().
		Return(eventID, nil).
		Times(1)

	suite.mockRegistrationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(registration *models.Registration) error {
			registration.ID = 42
			return nil
		}).
		Times(1)
}

// TestRegisterPrincipal tests the full happy path for a Principal
func (suite *RegistrationServiceTestSuite) TestRegisterPrincipal() {
	req := suite.validRequest()

	college := &models.College{Name: "ABC Engineering College"}
	college.ID = 7

	suite.mockCollegeRepo.EXPECT().
		GetByID(uint(7)).
		Return(college, nil).
		Times(1)

	suite.expectSuccessfulPersistence(req.Email, 25)

	var sent []*mailer.Message
	suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *mailer.Message) error {
			sent = append(sent, msg)
			return nil
		}).
		Times(2)

	pdf := []byte("%PDF-1.4 fake")
	suite.mockRenderer.EXPECT().
		Render(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data idcard.CardData) ([]byte, error) {
			assert.Equal(suite.T(), "Dr. A. Verma", data.Name)
			assert.Equal(suite.T(), "ABC Engineering College", data.CollegeName)
			assert.Equal(suite.T(), "0025", data.EventID)
			return pdf, nil
		}).
		Times(1)

	response, err := suite.registrationService.Register(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "User registered successfully and email sent with ID card.", response.Message)
	assert.Equal(suite.T(), "0025", response.EventID)

	// First send is the internal notification, second the confirmation.
	assert.Len(suite.T(), sent, 2)
	assert.Equal(suite.T(), "ops@iimstc.com", sent[0].To)
	assert.Equal(suite.T(), "New Registration", sent[0].Subject)
	assert.Contains(suite.T(), sent[0].Body, "College: ABC Engineering College")
	assert.Len(suite.T(), sent[0].Attachments, 1)
	assert.Equal(suite.T(), "photo.jpg", sent[0].Attachments[0].Filename)

	assert.Equal(suite.T(), "a.verma@test.edu", sent[1].To)
	assert.Contains(suite.T(), sent[1].Subject, "Diamond Beneath Your Feet")
	assert.Contains(suite.T(), sent[1].Body, "Respected Dr. A. Verma,")
	assert.Len(suite.T(), sent[1].Attachments, 1)
	assert.Equal(suite.T(), "IDCard.pdf", sent[1].Attachments[0].Filename)
	assert.Equal(suite.T(), pdf, sent[1].Attachments[0].Content)
}

// TestRegisterCouncilMember tests the committee-member passthrough path
func (suite *RegistrationServiceTestSuite) TestRegisterCouncilMember() {
	req := suite.validRequest()
	req.Designation = string(models.DesignationCouncilMember)
	req.CollegeID = ""
	req.CommitteeMember = "Finance Committee"
	req.ResearchPaper = &service.Upload{
		Filename: "paper.pdf",
		MimeType: "application/pdf",
		Data:     []byte("fake-pdf-bytes"),
	}

	suite.expectSuccessfulPersistence(req.Email, 3)

	var sent []*mailer.Message
	suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *mailer.Message) error {
			sent = append(sent, msg)
			return nil
		}).
		Times(2)

	suite.mockRenderer.EXPECT().
		Render(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data idcard.CardData) ([]byte, error) {
			// No college for a Council Member.
			assert.Equal(suite.T(), "N/A", data.CollegeName)
			return []byte("pdf"), nil
		}).
		Times(1)

	response, err := suite.registrationService.Register(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "0003", response.EventID)

	assert.Contains(suite.T(), sent[0].Body, "Committee Member: Finance Committee")
	assert.Len(suite.T(), sent[0].Attachments, 2)
	assert.Equal(suite.T(), "research_paper.pdf", sent[0].Attachments[1].Filename)
}

// TestRegisterCouncilMemberDefaultLabel tests the fallback label when the
// committee-member field is left empty
func (suite *RegistrationServiceTestSuite) TestRegisterCouncilMemberDefaultLabel() {
	req := suite.validRequest()
	req.Designation = string(models.DesignationCouncilMember)
	req.CollegeID = ""
	req.CommitteeMember = ""

	suite.expectSuccessfulPersistence(req.Email, 4)

	var internalBody string
	first := suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *mailer.Message) error {
			internalBody = msg.Body
			return nil
		}).
		Times(1)
	suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1).
		After(first)

	suite.mockRenderer.EXPECT().
		Render(gomock.Any(), gomock.Any()).
		Return([]byte("pdf"), nil).
		Times(1)

	_, err := suite.registrationService.Register(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), internalBody, "Committee Member: IIMSTC Council Member")
}

// TestRegisterViceChancellorNewCollege tests college creation by name
func (suite *RegistrationServiceTestSuite) TestRegisterViceChancellorNewCollege() {
	req := suite.validRequest()
	req.Designation = string(models.DesignationViceChancellor)
	req.CollegeID = ""
	req.CollegeName = "New Horizon University"

	suite.mockCollegeRepo.EXPECT().
		GetByName("New Horizon University").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockCollegeRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(college *models.College) error {
			assert.Equal(suite.T(), "New Horizon University", college.Name)
			college.ID = 11
			return nil
		}).
		Times(1)

	suite.expectSuccessfulPersistence(req.Email, 5)

	suite.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil).Times(1)

	response, err := suite.registrationService.Register(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "0005", response.EventID)
}

// TestRegisterViceChancellorExistingCollege tests that a known college name is
// reused instead of creating a duplicate row
func (suite *RegistrationServiceTestSuite) TestRegisterViceChancellorExistingCollege() {
	req := suite.validRequest()
	req.Designation = string(models.DesignationViceChancellor)
	req.CollegeID = ""
	req.CollegeName = "New Horizon University"

	existing := &models.College{Name: "New Horizon University"}
	existing.ID = 11

	suite.mockCollegeRepo.EXPECT().
		GetByName("New Horizon University").
		Return(existing, nil).
		Times(1)

	suite.expectSuccessfulPersistence(req.Email, 6)

	suite.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil).Times(1)

	_, err := suite.registrationService.Register(suite.ctx, req)

	assert.NoError(suite.T(), err)
}

// TestRegisterViceChancellorCollegeSurvivesDuplicateEmail tests that a college
// created during resolution is kept even when the submission is rejected for a
// duplicate email afterwards
func (suite *RegistrationServiceTestSuite) TestRegisterViceChancellorCollegeSurvivesDuplicateEmail() {
	req := suite.validRequest()
	req.Designation = string(models.DesignationViceChancellor)
	req.CollegeID = ""
	req.CollegeName = "New Horizon University"

	suite.mockCollegeRepo.EXPECT().
		GetByName("New Horizon University").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockCollegeRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockRegistrationRepo.EXPECT().
		ExistsByEmail(req.Email).
		Return(true, nil).
		Times(1)

	response, err := suite.registrationService.Register(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailExists)
}

// TestRegisterMissingRequiredFields tests the intake validation rejection
func (suite *RegistrationServiceTestSuite) TestRegisterMissingRequiredFields() {
	req := suite.validRequest()
	req.Email = ""

	response, err := suite.registrationService.Register(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingRequiredFields)
	assert.Equal(suite.T(), "Missing required fields", err.Error())
}

// TestRegisterPhotoRequired tests rejection of a submission without a photo
func (suite *RegistrationServiceTestSuite) TestRegisterPhotoRequired() {
	req := suite.validRequest()
	req.Photo = nil

	_, err := suite.registrationService.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPhotoRequired)

	req = suite.validRequest()
	req.Photo = &service.Upload{Filename: "photo.jpg", MimeType: "image/jpeg", Data: nil}

	_, err = suite.registrationService.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPhotoRequired)
}

// TestRegisterPhotoSizeBoundary tests that exactly 5 MiB passes and one byte
// over is rejected
func (suite *RegistrationServiceTestSuite) TestRegisterPhotoSizeBoundary() {
	req := suite.validRequest()
	req.Photo.Data = bytes.Repeat([]byte{0xFF}, service.MaxAttachmentBytes+1)

	_, err := suite.registrationService.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPhotoTooLarge)
	assert.Equal(suite.T(), "Photo size should not exceed 5 MB", err.Error())

	// Exactly at the limit the photo is accepted and the workflow proceeds.
	req = suite.validRequest()
	req.Photo.Data = bytes.Repeat([]byte{0xFF}, service.MaxAttachmentBytes)

	college := &models.College{Name: "ABC Engineering College"}
	college.ID = 7
	suite.mockCollegeRepo.EXPECT().GetByID(uint(7)).Return(college, nil).Times(1)
	suite.expectSuccessfulPersistence(req.Email, 1)
	suite.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil).Times(1)

	_, err = suite.registrationService.Register(suite.ctx, req)
	assert.NoError(suite.T(), err)
}

// TestRegisterResearchPaperTooLarge tests the research-paper size rejection
func (suite *RegistrationServiceTestSuite) TestRegisterResearchPaperTooLarge() {
	req := suite.validRequest()
	req.ResearchPaper = &service.Upload{
		Filename: "paper.pdf",
		MimeType: "application/pdf",
		Data:     bytes.Repeat([]byte{0xFF}, service.MaxAttachmentBytes+1),
	}

	_, err := suite.registrationService.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFileTooLarge)
	assert.Equal(suite.T(), "File size should not exceed 5MB", err.Error())
}

// TestRegisterCollegeIDRequired tests rejection when a designation that needs
// a college reference arrives without one
func (suite *RegistrationServiceTestSuite) TestRegisterCollegeIDRequired() {
	req := suite.validRequest()
	req.Designation = string(models.DesignationChairPerson)
	req.CollegeID = ""

	_, err := suite.registrationService.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCollegeIDRequired)
}

// TestRegisterInvalidCollegeID tests both the unparsable and the unknown
// college reference
func (suite *RegistrationServiceTestSuite) TestRegisterInvalidCollegeID() {
	req := suite.validRequest()
	req.CollegeID = "not-a-number"

	_, err := suite.registrationService.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCollegeID)

	req = suite.validRequest()
	req.CollegeID = "9999"

	suite.mockCollegeRepo.EXPECT().
		GetByID(uint(9999)).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err = suite.registrationService.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCollegeID)
	assert.Equal(suite.T(), "Invalid college ID", err.Error())
}

// TestRegisterCollegeNameRequired tests the Vice-Chancellor rejection when no
// college name is given
func (suite *RegistrationServiceTestSuite) TestRegisterCollegeNameRequired() {
	req := suite.validRequest()
	req.Designation = string(models.DesignationViceChancellor)
	req.CollegeID = ""
	req.CollegeName = ""

	_, err := suite.registrationService.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCollegeNameRequired)
	assert.Equal(suite.T(), "College name is required for Vice-Chancellor", err.Error())
}

// TestRegisterInvalidDesignation tests rejection of an unknown designation
func (suite *RegistrationServiceTestSuite) TestRegisterInvalidDesignation() {
	req := suite.validRequest()
	req.Designation = "Professor"

	_, err := suite.registrationService.Register(suite.ctx, req)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDesignation)
	assert.Equal(suite.T(), "Invalid designation", err.Error())
}

// TestRegisterDuplicateEmail tests the fast-path duplicate check
func (suite *RegistrationServiceTestSuite) TestRegisterDuplicateEmail() {
	req := suite.validRequest()

	college := &models.College{Name: "ABC Engineering College"}
	college.ID = 7
	suite.mockCollegeRepo.EXPECT().GetByID(uint(7)).Return(college, nil).Times(1)

	suite.mockRegistrationRepo.EXPECT().
		ExistsByEmail(req.Email).
		Return(true, nil).
		Times(1)

	response, err := suite.registrationService.Register(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailExists)
	assert.Equal(suite.T(), "Email already exists", err.Error())
}

// TestRegisterDuplicateEmailRace tests that a concurrent duplicate losing the
// race at the unique index gets the same rejection as the fast path
func (suite *RegistrationServiceTestSuite) TestRegisterDuplicateEmailRace() {
	req := suite.validRequest()

	college := &models.College{Name: "ABC Engineering College"}
	college.ID = 7
	suite.mockCollegeRepo.EXPECT().GetByID(uint(7)).Return(college, nil).Times(1)

	suite.mockRegistrationRepo.EXPECT().ExistsByEmail(req.Email).Return(false, nil).Times(1)
	suite.mockRegistrationRepo.EXPECT().NextEventID().Return(2, nil).Times(1)
	suite.mockRegistrationRepo.EXPECT().
		Create(gomock.Any()).
		Return(apperrors.ErrRegistrationExists).
		Times(1)

	_, err := suite.registrationService.Register(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailExists)
}

// TestRegisterInternalNotificationFailureTolerated tests that a failing
// internal notification does not affect the outcome
func (suite *RegistrationServiceTestSuite) TestRegisterInternalNotificationFailureTolerated() {
	req := suite.validRequest()

	college := &models.College{Name: "ABC Engineering College"}
	college.ID = 7
	suite.mockCollegeRepo.EXPECT().GetByID(uint(7)).Return(college, nil).Times(1)
	suite.expectSuccessfulPersistence(req.Email, 8)

	first := suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(errors.New("smtp: connection refused")).
		Times(1)
	suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1).
		After(first)

	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil).Times(1)

	response, err := suite.registrationService.Register(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "0008", response.EventID)
}

// TestRegisterRenderFailure tests that a rendering failure aborts the request
// with the registration already persisted
func (suite *RegistrationServiceTestSuite) TestRegisterRenderFailure() {
	req := suite.validRequest()

	college := &models.College{Name: "ABC Engineering College"}
	college.ID = 7
	suite.mockCollegeRepo.EXPECT().GetByID(uint(7)).Return(college, nil).Times(1)
	suite.expectSuccessfulPersistence(req.Email, 9)

	// Internal notification only; the confirmation is never attempted.
	suite.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	suite.mockRenderer.EXPECT().
		Render(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewRenderError("print", errors.New("browser crashed"))).
		Times(1)

	response, err := suite.registrationService.Register(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsRender(err))
}

// TestRegisterDeliveryFailure tests that a failed confirmation email surfaces
// as a delivery error
func (suite *RegistrationServiceTestSuite) TestRegisterDeliveryFailure() {
	req := suite.validRequest()

	college := &models.College{Name: "ABC Engineering College"}
	college.ID = 7
	suite.mockCollegeRepo.EXPECT().GetByID(uint(7)).Return(college, nil).Times(1)
	suite.expectSuccessfulPersistence(req.Email, 10)

	first := suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(errors.New("smtp: 550 mailbox unavailable")).
		Times(1).
		After(first)

	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil).Times(1)

	response, err := suite.registrationService.Register(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsDelivery(err))
}

// TestRegisterDeliveryFailureFlagPolicy tests that the "flag" policy marks the
// persisted row when the confirmation cannot be delivered
func (suite *RegistrationServiceTestSuite) TestRegisterDeliveryFailureFlagPolicy() {
	svc := suite.newService("flag")
	req := suite.validRequest()

	college := &models.College{Name: "ABC Engineering College"}
	college.ID = 7
	suite.mockCollegeRepo.EXPECT().GetByID(uint(7)).Return(college, nil).Times(1)
	suite.expectSuccessfulPersistence(req.Email, 11)

	first := suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(errors.New("smtp: timeout")).
		Times(1).
		After(first)

	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("pdf"), nil).Times(1)

	suite.mockRegistrationRepo.EXPECT().
		FlagDelivery(uint(42)).
		Return(nil).
		Times(1)

	_, err := svc.Register(suite.ctx, req)

	assert.True(suite.T(), apperrors.IsDelivery(err))
}

// TestRegisterRenderFailureFlagPolicy tests that the "flag" policy also covers
// a render failure, since the row is persisted but no card went out
func (suite *RegistrationServiceTestSuite) TestRegisterRenderFailureFlagPolicy() {
	svc := suite.newService("flag")
	req := suite.validRequest()

	college := &models.College{Name: "ABC Engineering College"}
	college.ID = 7
	suite.mockCollegeRepo.EXPECT().GetByID(uint(7)).Return(college, nil).Times(1)
	suite.expectSuccessfulPersistence(req.Email, 12)

	suite.mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	suite.mockRenderer.EXPECT().
		Render(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewRenderError("content", errors.New("navigation failed"))).
		Times(1)

	suite.mockRegistrationRepo.EXPECT().
		FlagDelivery(uint(42)).
		Return(nil).
		Times(1)

	_, err := svc.Register(suite.ctx, req)

	assert.True(suite.T(), apperrors.IsRender(err))
}

// TestList tests the listing view
func (suite *RegistrationServiceTestSuite) TestList() {
	createdAt := time.Date(2024, 9, 1, 10, 30, 0, 0, time.UTC)
	collegeName := "ABC Engineering College"

	registration := models.Registration{
		Name:          "Dr. A. Verma",
		Designation:   models.DesignationPrincipal,
		College:       &models.College{Name: collegeName},
		Phone:         "+91-98765-43210",
		Email:         "a.verma@test.edu",
		Photo:         []byte("abc"),
		PhotoMimeType: "image/png",
		Reason:        "Research presentation",
		EventID:       25,
	}
	registration.ID = 1
	registration.CreatedAt = createdAt

	suite.mockRegistrationRepo.EXPECT().
		GetAll(20, 0).
		Return([]models.Registration{registration}, int64(1), nil).
		Times(1)

	response, err := suite.registrationService.List(1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), response.Total)
	assert.Len(suite.T(), response.Registrations, 1)

	row := response.Registrations[0]
	assert.Equal(suite.T(), "0025", row.EventID)
	assert.Equal(suite.T(), collegeName, *row.CollegeName)
	assert.Equal(suite.T(), "data:image/png;base64,YWJj", row.PhotoDataURL)
	assert.Equal(suite.T(), "2024-09-01T10:30:00Z", row.CreatedAt)
}

// TestListDefaultsPagination tests that out-of-range paging values fall back
// to the defaults
func (suite *RegistrationServiceTestSuite) TestListDefaultsPagination() {
	suite.mockRegistrationRepo.EXPECT().
		GetAll(20, 0).
		Return([]models.Registration{}, int64(0), nil).
		Times(1)

	response, err := suite.registrationService.List(0, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 20, response.PageSize)
}

// TestRegistrationServiceTestSuite runs the test suite
func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}

// TestFormatEventID tests the zero-padded display form across the rollover
func TestFormatEventID(t *testing.T) {
	cases := []struct {
		n        int
		expected string
	}{
		{1, "0001"},
		{25, "0025"},
		{999, "0999"},
		{9999, "9999"},
		{10000, "10000"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d", tc.n), func(t *testing.T) {
			assert.Equal(t, tc.expected, service.FormatEventID(tc.n))
		})
	}
}
