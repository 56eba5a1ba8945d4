package models

import (
	"time"
)

// BaseModel provides common fields for all models with integer primary keys.
// Surrogate keys are plain auto-increment integers because the public
// registration form submits numeric college IDs.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
