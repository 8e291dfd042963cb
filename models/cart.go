package models

import "time"

// CartLine is one dish in the cart. The persisted snapshot is a JSON array
// of these, so the json tags here are the wire layout.
type CartLine struct {
	DishID   uint         `json:"dishId"`
	Dish     DishSnapshot `json:"dish"`
	Quantity int          `json:"quantity"`
}

// CartSnapshot is the single persisted row per shopper holding the
// serialized cart lines.
type CartSnapshot struct {
	UserID    string `gorm:"primaryKey"`
	Data      []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}
