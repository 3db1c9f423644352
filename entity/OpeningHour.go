package entity

import (
	"time"
)

// OpeningHour is one row per day of week. HoursText follows the
// "HHhMM - HHhMM" grammar, optionally "… & …" for a split day, empty when
// no window is configured. When IsClosed is set the text is kept but ignored.
type OpeningHour struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	DayName   string    `json:"day_name" gorm:"not null"`
	DayOrder  int       `json:"day_order" gorm:"uniqueIndex;not null"` // 1 = Lundi .. 7 = Dimanche
	IsClosed  bool      `json:"is_closed"`
	HoursText string    `json:"hours_text"`
	UpdatedAt time.Time `json:"updated_at"`
}
