package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"

	"event-registration-backend/internal/config"
	"event-registration-backend/internal/database/models"
	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/idcard"
	"event-registration-backend/internal/logger"
	"event-registration-backend/internal/mailer"
	"event-registration-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MaxAttachmentBytes is the per-file ceiling, re-checked here as a second
// guard behind the transport-level request body cap.
const MaxAttachmentBytes = 5 * 1024 * 1024

const (
	internalSubject     = "New Registration"
	confirmationSubject = `Invitation Confirmation for "Diamond Beneath Your Feet" Event`

	confirmationBodyFormat = `Respected %s,

Greetings from the International Institute of Medical Science & Technology Council (IIMSTC).

Thank you for registering as a Special Guest/Guest at our upcoming international event, "Diamond Beneath Your Feet," on Monday, September 23, 2024, at Hotel Lalith Ashok, Bangalore, from 10 AM to 1 PM. This prestigious event will feature a major announcement about international internship opportunities for economically underprivileged Indian students, including stipends and scholarships.

An identity card is attached to this email. Please ensure you bring this ID for entry purposes. Kindly note, entry is exclusive to the registered guest, and nominees, proxy representatives, personal assistants, secretaries, or drivers will not be permitted in the hall.

We are honoured to welcome you to this event and look forward to hosting you.

Warm regards,
Welcome Committee`
)

// RegistrationService orchestrates the registration submission workflow:
// intake validation, college resolution, duplicate check, persistence, the
// best-effort internal notification, identity-card rendering, and the
// load-bearing confirmation email.
type RegistrationService struct {
	registrationRepo  repository.RegistrationRepositoryInterface
	collegeRepo       repository.CollegeRepositoryInterface
	sender            mailer.Sender
	renderer          idcard.Renderer
	validator         *validator.Validate
	notifyEmail       string
	mailFailurePolicy string
	log               *logger.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	registrationRepo repository.RegistrationRepositoryInterface,
	collegeRepo repository.CollegeRepositoryInterface,
	sender mailer.Sender,
	renderer idcard.Renderer,
	validator *validator.Validate,
	cfg *config.Config,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo:  registrationRepo,
		collegeRepo:       collegeRepo,
		sender:            sender,
		renderer:          renderer,
		validator:         validator,
		notifyEmail:       cfg.NotifyEmail,
		mailFailurePolicy: cfg.MailFailurePolicy,
		log:               logger.New().WithField("component", "registration"),
	}
}

// Upload is one uploaded file part, already read into memory by the handler.
type Upload struct {
	Filename string
	MimeType string
	Data     []byte
}

// RegisterRequest represents one registration form submission. CollegeID is
// kept as the raw form value; it is only parsed for designations that need it.
type RegisterRequest struct {
	Name            string `validate:"required"`
	Designation     string `validate:"required"`
	CollegeID       string
	CollegeName     string
	CommitteeMember string
	Phone           string `validate:"required"`
	Email           string `validate:"required"`
	Reason          string `validate:"required"`
	Photo           *Upload
	ResearchPaper   *Upload
}

// RegisterResponse represents the outcome of a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	EventID string `json:"event_id"`
}

// RegistrationResponse represents one registration in the listing, with the
// photo re-encoded as a displayable data URL. Research paper bytes are never
// exposed through the listing.
type RegistrationResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Designation     string  `json:"designation"`
	CollegeName     *string `json:"college_name,omitempty"`
	CommitteeMember *string `json:"committee_member,omitempty"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	Reason          string  `json:"reason"`
	EventID         string  `json:"event_id"`
	PhotoDataURL    string  `json:"photo_data_url"`
	CreatedAt       string  `json:"created_at"`
}

// RegistrationListResponse represents a paginated list of registrations
type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// FormatEventID renders a sequence number in its display form, zero-padded to
// at least four digits.
func FormatEventID(n int) string {
	return fmt.Sprintf("%04d", n)
}

// Register runs the full submission workflow. Rejections (validation,
// college resolution, duplicate email) surface as ValidationErrors before
// anything is persisted; rendering and confirmation-delivery failures surface
// as RenderError/DeliveryError with the registration already stored.
func (s *RegistrationService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	// Validating
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrMissingRequiredFields
	}
	if req.Photo == nil || len(req.Photo.Data) == 0 {
		return nil, apperrors.ErrPhotoRequired
	}
	if len(req.Photo.Data) > MaxAttachmentBytes {
		return nil, apperrors.ErrPhotoTooLarge
	}
	if req.ResearchPaper != nil && len(req.ResearchPaper.Data) > MaxAttachmentBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	// ResolvingEntity. This runs before the duplicate check, so a college
	// created for a Vice-Chancellor survives even when the submission is
	// later rejected for a duplicate email.
	college, committeeMember, err := s.resolveCollege(req)
	if err != nil {
		return nil, err
	}

	// CheckingDuplicate
	exists, err := s.registrationRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	// Persisting
	eventID, err := s.registrationRepo.NextEventID()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate event id: %w", err)
	}

	registration := &models.Registration{
		Name:            req.Name,
		Designation:     models.Designation(req.Designation),
		CommitteeMember: committeeMember,
		Phone:           req.Phone,
		Email:           req.Email,
		Photo:           req.Photo.Data,
		PhotoMimeType:   req.Photo.MimeType,
		Reason:          req.Reason,
		EventID:         eventID,
	}
	if college != nil {
		registration.CollegeID = &college.ID
	}
	if req.ResearchPaper != nil {
		registration.ResearchPaper = req.ResearchPaper.Data
	}

	if err := s.registrationRepo.Create(registration); err != nil {
		// Concurrent duplicate submissions lose the race at the unique
		// index and get the same answer as the fast-path check.
		if apperrors.IsAlreadyExists(err) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	collegeName := "N/A"
	if college != nil {
		collegeName = college.Name
	}

	// NotifyingInternal: best-effort, failure logged and swallowed.
	s.notifyInternal(ctx, req, collegeName)

	// Rendering
	pdf, err := s.renderer.Render(ctx, idcard.CardData{
		Name:          req.Name,
		Designation:   req.Designation,
		CollegeName:   collegeName,
		EventID:       FormatEventID(eventID),
		Photo:         req.Photo.Data,
		PhotoMimeType: req.Photo.MimeType,
	})
	if err != nil {
		s.log.WithError(err).WithField("email", req.Email).Error("identity card rendering failed")
		s.handleUndelivered(registration)
		return nil, err
	}

	// NotifyingConfirmation: load-bearing, failure aborts the request.
	confirmation := &mailer.Message{
		To:      req.Email,
		Subject: confirmationSubject,
		Body:    fmt.Sprintf(confirmationBodyFormat, req.Name),
		Attachments: []mailer.Attachment{
			{Filename: "IDCard.pdf", Content: pdf},
		},
	}
	if err := s.sender.Send(ctx, confirmation); err != nil {
		s.log.WithError(err).WithField("email", req.Email).Error("confirmation email failed")
		s.handleUndelivered(registration)
		return nil, apperrors.NewDeliveryError(req.Email, err)
	}

	return &RegisterResponse{
		Message: "User registered successfully and email sent with ID card.",
		EventID: FormatEventID(eventID),
	}, nil
}

// resolveCollege dispatches on designation and resolves the college reference
// (or the committee-member passthrough) the submission should carry.
func (s *RegistrationService) resolveCollege(req *RegisterRequest) (*models.College, *string, error) {
	switch models.Designation(req.Designation) {
	case models.DesignationChairPerson, models.DesignationPrincipal:
		if req.CollegeID == "" {
			return nil, nil, apperrors.ErrCollegeIDRequired
		}
		id, err := strconv.ParseUint(req.CollegeID, 10, 32)
		if err != nil {
			return nil, nil, apperrors.ErrInvalidCollegeID
		}
		college, err := s.collegeRepo.GetByID(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperrors.ErrInvalidCollegeID
			}
			return nil, nil, fmt.Errorf("failed to look up college: %w", err)
		}
		return college, nil, nil

	case models.DesignationViceChancellor:
		if req.CollegeName == "" {
			return nil, nil, apperrors.ErrCollegeNameRequired
		}
		college, err := s.collegeRepo.GetByName(req.CollegeName)
		if err == nil {
			return college, nil, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("failed to look up college by name: %w", err)
		}
		college = &models.College{Name: req.CollegeName}
		if err := s.collegeRepo.Create(college); err != nil {
			return nil, nil, fmt.Errorf("failed to create college: %w", err)
		}
		return college, nil, nil

	case models.DesignationCouncilMember:
		committeeMember := req.CommitteeMember
		return nil, &committeeMember, nil

	default:
		return nil, nil, apperrors.ErrInvalidDesignation
	}
}

// notifyInternal sends the operations mailbox a plain-text summary with the
// raw attachments. It runs after persistence and before rendering; a failure
// here never affects the request outcome.
func (s *RegistrationService) notifyInternal(ctx context.Context, req *RegisterRequest, collegeName string) {
	if s.notifyEmail == "" {
		s.log.Debug("internal notification skipped: NOTIFY_EMAIL not configured")
		return
	}

	var affiliation string
	if models.Designation(req.Designation) == models.DesignationCouncilMember {
		member := req.CommitteeMember
		if member == "" {
			member = "IIMSTC Council Member"
		}
		affiliation = "Committee Member: " + member
	} else {
		affiliation = "College: " + collegeName
	}

	body := fmt.Sprintf(`A new user has registered with the following details:

Name: %s
Designation: %s
%s
Phone: %s
Email: %s
Reason: %s`, req.Name, req.Designation, affiliation, req.Phone, req.Email, req.Reason)

	msg := &mailer.Message{
		To:      s.notifyEmail,
		Subject: internalSubject,
		Body:    body,
		Attachments: []mailer.Attachment{
			{Filename: "photo.jpg", Content: req.Photo.Data},
		},
	}
	if req.ResearchPaper != nil {
		msg.Attachments = append(msg.Attachments, mailer.Attachment{
			Filename: "research_paper.pdf",
			Content:  req.ResearchPaper.Data,
		})
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.WithError(err).Warn("internal notification email failed")
	}
}

// handleUndelivered applies the configured policy to a persisted registration
// whose identity card could not be produced or delivered.
func (s *RegistrationService) handleUndelivered(registration *models.Registration) {
	if s.mailFailurePolicy != "flag" {
		return
	}
	if err := s.registrationRepo.FlagDelivery(registration.ID); err != nil {
		s.log.WithError(err).WithField("registration_id", registration.ID).
			Error("failed to flag registration for follow-up")
	}
}

// List retrieves registrations for the listing view, newest first.
func (s *RegistrationService) List(page, pageSize int) (*RegistrationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	registrations, total, err := s.registrationRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get registrations: %w", err)
	}

	responses := make([]RegistrationResponse, len(registrations))
	for i, registration := range registrations {
		responses[i] = *s.toResponse(&registration)
	}

	return &RegistrationListResponse{
		Registrations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

func (s *RegistrationService) toResponse(registration *models.Registration) *RegistrationResponse {
	resp := &RegistrationResponse{
		ID:              registration.ID,
		Name:            registration.Name,
		Designation:     string(registration.Designation),
		CommitteeMember: registration.CommitteeMember,
		Phone:           registration.Phone,
		Email:           registration.Email,
		Reason:          registration.Reason,
		EventID:         FormatEventID(registration.EventID),
		PhotoDataURL:    photoDataURL(registration.PhotoMimeType, registration.Photo),
		CreatedAt:       registration.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if registration.College != nil {
		resp.CollegeName = &registration.College.Name
	}
	return resp
}

func photoDataURL(mimeType string, photo []byte) string {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(photo)
}
