package entity

import (
	"time"
)

type Category struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Slug         string    `json:"slug" gorm:"index"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url" gorm:"column:image_url"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Supplements are owned by the category and go away with it.
	Supplements []Supplement `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}
