package entity

import (
	"time"
)

// OrderCustomer is the contact block of a draft. Address stays empty for
// pickup orders.
type OrderCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// OrderDraft is a composed, validated order ready for hand-off to the
// intake channel. It is immutable once built: Total is locked at composition
// time and never recomputed.
type OrderDraft struct {
	Customer  OrderCustomer `json:"customer"`
	Items     []CartItem    `json:"items"`
	Total     int64         `json:"total"`
	Delivery  bool          `json:"delivery"`
	TimeSlot  string        `json:"pickup_time"`
	CreatedAt time.Time     `json:"date"`
}
