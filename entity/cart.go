package entity

import (
	"time"
)

// Cart is the customer's in-progress selection. It is not a database table:
// carts live in the session store under the browser's session id and die with
// it (or when an order goes through).
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem snapshots the unit price at the moment the product was added, so
// a later admin price edit does not silently change an open cart.
type CartItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url"`
}

// Total is always recomputed from the lines; nothing caches it.
func (c *Cart) Total() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.UnitPrice * int64(it.Quantity)
	}
	return total
}

// Count is the badge number: sum of quantities, not number of lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
