package models

// Registration is one accepted event-registration submission, including the
// raw photo and optional research paper bytes. Rows are created exactly once
// per successful request and are read-only afterwards; only DeliveryFlagged
// may be set later when the confirmation email could not be delivered.
type Registration struct {
	BaseModel
	Name        string      `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Designation Designation `json:"designation" gorm:"not null;size:40" validate:"required"`

	// Exactly one of CollegeID and CommitteeMember is populated, chosen by
	// designation. Council Member implies CollegeID is null.
	CollegeID       *uint    `json:"college_id"`
	College         *College `json:"college,omitempty" gorm:"foreignKey:CollegeID"`
	CommitteeMember *string  `json:"committee_member,omitempty" gorm:"size:200"`

	Phone string `json:"phone" gorm:"not null;size:40" validate:"required,max=40"`
	Email string `json:"email" gorm:"uniqueIndex;not null;size:254" validate:"required,email"`

	Photo         []byte `json:"-" gorm:"type:bytea;not null"`
	PhotoMimeType string `json:"photo_mime_type" gorm:"size:100"`
	ResearchPaper []byte `json:"-" gorm:"type:bytea"`

	Reason string `json:"reason" gorm:"type:text" validate:"required"`

	// EventID is the per-submission sequence number; its display form is
	// zero-padded to at least four digits.
	EventID int `json:"event_id" gorm:"not null"`

	// DeliveryFlagged marks rows whose confirmation email failed, when the
	// mail failure policy is set to "flag".
	DeliveryFlagged bool `json:"delivery_flagged"`
}

// TableName returns the table name for Registration
func (Registration) TableName() string {
	return "registrations"
}
