package entity

import (
	"time"
)

// Setting is a simple key/value row for site-wide knobs edited from the
// back office (contact email, order recipient, ...).
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null;column:key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
