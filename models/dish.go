package models

import "time"

type DishKind string

const (
	DishKindStandard DishKind = "standard"  // regular dish, any quantity
	DishKindClass    DishKind = "class"     // cooking class seat, one per order
	DishKindMealPrep DishKind = "meal_prep" // weekly meal-prep plan, one per order
)

type Dish struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	Kind        DishKind `gorm:"type:VARCHAR(20);default:'standard'" json:"kind"`
	CookID      string   `gorm:"index" json:"cook_id"`
	CookName    string   `json:"cook_name"`
	Image       string   `json:"image"`
	Available   bool     `gorm:"default:true" json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DishSnapshot is the frozen copy of a dish captured at add-to-cart time.
// The cart never re-reads the live dish row after this point.
type DishSnapshot struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Kind     DishKind `json:"kind"`
	CookID   string   `json:"cookId"`
	CookName string   `json:"cookName"`
}

func (d Dish) Snapshot() DishSnapshot {
	return DishSnapshot{
		ID:       d.ID,
		Name:     d.Name,
		Price:    d.Price,
		Kind:     d.Kind,
		CookID:   d.CookID,
		CookName: d.CookName,
	}
}

// SingleQuantity reports whether the kind is pinned at quantity 1.
func (k DishKind) SingleQuantity() bool {
	return k == DishKindClass || k == DishKindMealPrep
}
