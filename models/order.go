package models

import "time"

type OrderStatus string
type DeliveryMethod string

const (
	// Order statuses (simulated kitchen flow)
	OrderStatusPending    OrderStatus = "pending"     // Order placed, awaiting cook confirmation
	OrderStatusConfirmed  OrderStatus = "confirmed"   // Cook accepted the order
	OrderStatusInProgress OrderStatus = "in_progress" // Cooking
	OrderStatusReady      OrderStatus = "ready"       // Packed, ready for handoff
	OrderStatusDelivered  OrderStatus = "delivered"   // Courier dropped it off
	OrderStatusCompleted  OrderStatus = "completed"   // Closed out

	// Delivery methods
	DeliveryMethodCourier DeliveryMethod = "delivery"
	DeliveryMethodPickup  DeliveryMethod = "self_pickup"
)

// Terminal reports whether no further transition exists for the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted
}

// Buyer is the shopper identity stamped onto an order at checkout.
type Buyer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StatusChange struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// Order is an immutable-at-creation copy of the cart; only the lifecycle
// simulator touches Status and StatusHistory after creation.
type Order struct {
	ID             string         `json:"id"`
	Ref            string         `json:"ref"`
	BuyerID        string         `json:"buyer_id"`
	BuyerName      string         `json:"buyer_name"`
	CookID         string         `json:"cook_id"`
	CookName       string         `json:"cook_name"`
	Items          []CartLine     `json:"items"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	Total          float64        `json:"total"`
	Status         OrderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	StatusHistory  []StatusChange `json:"status_history"`
}
