package pricing

import "strings"

// Fixed promo table: code -> discount rate on the subtotal.
var promoRates = map[string]float64{
	"SAVE10":    0.10,
	"WELCOME15": 0.15,
	"TASTY20":   0.20,
}

// Rate resolves a promo code to its discount rate. Codes are matched
// case-insensitively with surrounding whitespace trimmed; unknown or empty
// codes resolve to (0, false).
func Rate(code string) (float64, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return 0, false
	}
	rate, ok := promoRates[normalized]
	return rate, ok
}
