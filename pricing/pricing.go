package pricing

import "github.com/arielcolab/dishly-api/models"

const (
	serviceFeeRate        = 0.05
	processingFeeFlat     = 1.99
	deliveryFeeFlat       = 2.99
	freeDeliveryThreshold = 25.0
	taxRate               = 0.08
)

// Compute derives the full charge breakdown from cart lines and an optional
// promo code. Pure: no I/O, no clock, same inputs always give the same
// breakdown. The service fee is charged on the raw subtotal even when a
// promo applies; delivery is free at or above the threshold on the
// discounted subtotal. No intermediate rounding.
func Compute(lines []models.CartLine, promoCode string) models.PriceBreakdown {
	var b models.PriceBreakdown
	for _, line := range lines {
		b.Subtotal += line.Dish.Price * float64(line.Quantity)
	}

	rate, _ := Rate(promoCode)
	b.PromoDiscountAmount = b.Subtotal * rate
	b.DiscountedSubtotal = b.Subtotal - b.PromoDiscountAmount

	if b.DiscountedSubtotal > 0 {
		b.ServiceFee = b.Subtotal * serviceFeeRate
	}
	if b.Subtotal > 0 {
		b.ProcessingFee = processingFeeFlat
	}
	if b.DiscountedSubtotal > 0 && b.DiscountedSubtotal < freeDeliveryThreshold {
		b.DeliveryFee = deliveryFeeFlat
	}

	b.Tax = (b.DiscountedSubtotal + b.ServiceFee + b.ProcessingFee + b.DeliveryFee) * taxRate
	b.Total = b.DiscountedSubtotal + b.ServiceFee + b.ProcessingFee + b.DeliveryFee + b.Tax
	return b
}
