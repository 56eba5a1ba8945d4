package models

// College is an institution a registrant may belong to. Colleges are created
// lazily by Vice-Chancellor registrations and are never mutated or deleted by
// the registration workflow.
type College struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,min=1,max=200"`
}

// TableName returns the table name for College
func (College) TableName() string {
	return "colleges"
}
