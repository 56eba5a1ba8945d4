package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a business-rule rejection. Its message is safe
// to expose verbatim to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RenderError represents a failure in the identity-card rendering engine.
// Stage distinguishes the content-load phase from the page-print phase.
type RenderError struct {
	Stage string // "content" or "print"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering failed during %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// DeliveryError represents a failure to send the load-bearing confirmation
// email. The registration row is already persisted when it occurs.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Entity errors
var (
	ErrCollegeNotFound      = &NotFoundError{Entity: "college"}
	ErrRegistrationNotFound = &NotFoundError{Entity: "registration"}
	ErrRegistrationExists   = &AlreadyExistsError{Entity: "registration", Context: "with this email"}
)

// Registration rejections. Messages mirror the public API contract and are
// returned to the caller verbatim.
var (
	ErrMissingRequiredFields = &ValidationError{Message: "Missing required fields"}
	ErrPhotoRequired         = &ValidationError{Message: "Photo is required"}
	ErrPhotoTooLarge         = &ValidationError{Message: "Photo size should not exceed 5 MB"}
	ErrFileTooLarge          = &ValidationError{Message: "File size should not exceed 5MB"}
	ErrCollegeIDRequired     = &ValidationError{Message: "College ID is required for this designation"}
	ErrInvalidCollegeID      = &ValidationError{Message: "Invalid college ID"}
	ErrCollegeNameRequired   = &ValidationError{Message: "College name is required for Vice-Chancellor"}
	ErrInvalidDesignation    = &ValidationError{Message: "Invalid designation"}
	ErrEmailExists           = &ValidationError{Message: "Email already exists"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRender checks if an error is a RenderError
func IsRender(err error) bool {
	var renderErr *RenderError
	return errors.As(err, &renderErr)
}

// IsDelivery checks if an error is a DeliveryError
func IsDelivery(err error) bool {
	var deliveryErr *DeliveryError
	return errors.As(err, &deliveryErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NewRenderError wraps an engine failure with the stage it occurred in
func NewRenderError(stage string, err error) error {
	return &RenderError{Stage: stage, Err: err}
}

// NewDeliveryError wraps a confirmation send failure
func NewDeliveryError(recipient string, err error) error {
	return &DeliveryError{Recipient: recipient, Err: err}
}
