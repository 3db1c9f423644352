package entity

import (
	"time"
)

// Product prices are stored in cents to keep arithmetic exact.
type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        int64     `json:"price" gorm:"not null"`
	CategoryID   *uint     `json:"category_id" gorm:"index"`
	Category     *Category `json:"-"`
	IsOutOfStock bool      `json:"is_out_of_stock"`
	IsNew        bool      `json:"is_new"`
	IsFeatured   bool      `json:"is_featured"`
	ImageURL     string    `json:"image_url" gorm:"column:image_url"`
	DisplayOrder int       `json:"display_order" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
