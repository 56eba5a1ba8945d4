package models

// RegistrationCounter backs the event sequence number with a single row that
// is bumped atomically on every accepted registration. Counting rows and
// adding one would hand out duplicate numbers under concurrent submissions.
type RegistrationCounter struct {
	ID    uint  `json:"id" gorm:"primaryKey"`
	Value int64 `json:"value" gorm:"not null"`
}

// TableName returns the table name for RegistrationCounter
func (RegistrationCounter) TableName() string {
	return "registration_counters"
}
