package entity

import (
	"time"
)

// Supplement is an extra the customer can add to products of one category
// (chantilly, pépites, etc.). Price in cents.
type Supplement struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CategoryID uint      `json:"category_id" gorm:"index;not null"`
	Name       string    `json:"name" gorm:"not null"`
	Price      int64     `json:"price"`
	Icon       string    `json:"icon"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
