package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	apperrors "event-registration-backend/internal/errors"
	"event-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles HTTP requests for registrations
type RegistrationHandler struct {
	service        service.RegistrationServiceInterface
	maxUploadBytes int64
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service service.RegistrationServiceInterface, maxUploadBytes int64) *RegistrationHandler {
	return &RegistrationHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// MessageResponse is the uniform body for registration outcomes
type MessageResponse struct {
	Message string `json:"message"`
}

// Register handles POST /api/v1/register
// @Summary Register an event attendee
// @Description Accept a multipart registration form with a photo and optional research paper, persist it, and email the generated identity card
// @Tags registrations
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Attendee name"
// @Param designation formData string true "Designation (Chair Person, Principal, Vice-Chancellor, Council Member)"
// @Param collegeId formData string false "College ID (Chair Person / Principal)"
// @Param collegeName formData string false "College name (Vice-Chancellor)"
// @Param committeeMember formData string false "Committee member text (Council Member)"
// @Param phone formData string true "Phone number"
// @Param email formData string true "Email address"
// @Param reason formData string true "Reason for attending"
// @Param photo formData file true "Attendee photo (max 5 MB)"
// @Param researchPaper formData file false "Research paper (max 5 MB)"
// @Success 201 {object} MessageResponse "Registration accepted, ID card emailed"
// @Failure 400 {object} MessageResponse "Validation or duplicate-email rejection"
// @Failure 500 {object} MessageResponse "Rendering, delivery, or unexpected failure"
// @Router /register [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	req := &service.RegisterRequest{
		Name:            c.PostForm("name"),
		Designation:     c.PostForm("designation"),
		CollegeID:       c.PostForm("collegeId"),
		CollegeName:     c.PostForm("collegeName"),
		CommitteeMember: c.PostForm("committeeMember"),
		Phone:           c.PostForm("phone"),
		Email:           c.PostForm("email"),
		Reason:          c.PostForm("reason"),
	}

	photo, err := h.formUpload(c, "photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}
	researchPaper, err := h.formUpload(c, "researchPaper")
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}
	req.Photo = photo
	req.ResearchPaper = researchPaper

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: resp.Message})
}

// List handles GET /api/v1/registrations
// @Summary List registrations
// @Description Get registered attendees, newest first, with photos re-encoded as data URLs
// @Tags registrations
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RegistrationListResponse "Successfully retrieved registrations"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /registrations [get]
func (h *RegistrationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	registrations, err := h.service.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, registrations)
}

// formUpload reads one named file part into memory. A missing part returns
// nil; presence requirements belong to the service. The per-file transport
// cap is enforced here before the bytes are read.
func (h *RegistrationHandler) formUpload(c *gin.Context, field string) (*service.Upload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.ErrFileTooLarge
	}

	if fileHeader.Size > h.maxUploadBytes {
		return nil, apperrors.ErrFileTooLarge
	}

	data, err := readAll(fileHeader)
	if err != nil {
		return nil, apperrors.NewValidationError("Could not read uploaded file")
	}

	return &service.Upload{
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}

func readAll(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// writeError maps workflow errors onto the public status/message contract.
// Rejections carry their message verbatim; failures after persistence stay
// opaque to the caller with the detail already logged server-side.
func (h *RegistrationHandler) writeError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	case apperrors.IsDelivery(err):
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Error sending email"})
	default:
		// Rendering and unexpected failures share the opaque answer.
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
	}
}
