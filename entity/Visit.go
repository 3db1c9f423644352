package entity

import (
	"time"
)

// Visit is one tracked page view. Day is a "YYYYMMDD" bucket so the
// analytics aggregation stays a plain GROUP BY.
type Visit struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VisitorID string    `json:"visitor_id" gorm:"index;not null"`
	Path      string    `json:"path"`
	Day       string    `json:"day" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}
