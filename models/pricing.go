package models

// PriceBreakdown is derived from the cart on every read; it is never stored.
// Values are kept at full float64 precision; rounding is a display concern.
type PriceBreakdown struct {
	Subtotal            float64 `json:"subtotal"`
	PromoDiscountAmount float64 `json:"promo_discount_amount"`
	DiscountedSubtotal  float64 `json:"discounted_subtotal"`
	ServiceFee          float64 `json:"service_fee"`
	ProcessingFee       float64 `json:"processing_fee"`
	DeliveryFee         float64 `json:"delivery_fee"`
	Tax                 float64 `json:"tax"`
	Total               float64 `json:"total"`
}
