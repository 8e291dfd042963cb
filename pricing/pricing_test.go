package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielcolab/dishly-api/models"
)

func line(id uint, price float64, qty int) models.CartLine {
	return models.CartLine{
		DishID:   id,
		Dish:     models.DishSnapshot{ID: id, Name: "dish", Price: price, Kind: models.DishKindStandard},
		Quantity: qty,
	}
}

func TestComputeEmptyCart(t *testing.T) {
	b := Compute(nil, "")
	assert.Equal(t, models.PriceBreakdown{}, b)
}

func TestComputeSubtotal(t *testing.T) {
	lines := []models.CartLine{line(1, 12.50, 2), line(2, 4.25, 3)}
	b := Compute(lines, "")
	assert.InDelta(t, 37.75, b.Subtotal, 1e-9)
	assert.Zero(t, b.PromoDiscountAmount)
	assert.InDelta(t, b.Subtotal, b.DiscountedSubtotal, 1e-9)
}

func TestComputeSave10OnHundred(t *testing.T) {
	lines := []models.CartLine{line(1, 100, 1)}
	b := Compute(lines, "SAVE10")
	assert.InDelta(t, 10.00, b.PromoDiscountAmount, 1e-9)
	assert.InDelta(t, 90.00, b.DiscountedSubtotal, 1e-9)
	// service fee stays on the raw subtotal
	assert.InDelta(t, 5.00, b.ServiceFee, 1e-9)
}

func TestComputePromoCaseInsensitive(t *testing.T) {
	lines := []models.CartLine{line(1, 100, 1)}
	assert.Equal(t, Compute(lines, "SAVE10"), Compute(lines, "  save10 "))
}

func TestComputeDeliveryFeeCutoff(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		promo    string
		expected float64
	}{
		{"just under threshold", 24.99, "", 2.99},
		{"exactly at threshold", 25.00, "", 0},
		{"well above threshold", 60.00, "", 0},
		{"promo drags discounted subtotal under", 26.00, "SAVE10", 2.99},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Compute([]models.CartLine{line(1, tc.price, 1)}, tc.promo)
			assert.InDelta(t, tc.expected, b.DeliveryFee, 1e-9)
		})
	}
}

func TestComputeFeesAndTaxPipeline(t *testing.T) {
	lines := []models.CartLine{line(1, 10, 2)} // subtotal 20
	b := Compute(lines, "")
	assert.InDelta(t, 20.00, b.Subtotal, 1e-9)
	assert.InDelta(t, 1.00, b.ServiceFee, 1e-9)
	assert.InDelta(t, 1.99, b.ProcessingFee, 1e-9)
	assert.InDelta(t, 2.99, b.DeliveryFee, 1e-9)
	taxable := 20.00 + 1.00 + 1.99 + 2.99
	assert.InDelta(t, taxable*0.08, b.Tax, 1e-9)
	assert.InDelta(t, taxable*1.08, b.Total, 1e-9)
}

func TestComputeDeterministic(t *testing.T) {
	lines := []models.CartLine{line(1, 9.99, 3), line(2, 15.50, 1)}
	assert.Equal(t, Compute(lines, "TASTY20"), Compute(lines, "TASTY20"))
}
