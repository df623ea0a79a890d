// Package pricing maps dual-currency unit prices to displayed amounts.
package pricing

import (
	"fmt"
	"math"

	"raynott-storefront/internal/domain"
)

// UnitPrice selects the product's unit price for the given display
// currency. A missing or unusable price (zero value, NaN, Inf from
// degraded upstream data) is rendered as zero rather than failing.
func UnitPrice(p domain.Product, currency domain.Currency) float64 {
	var v float64
	switch currency {
	case domain.CurrencyINR:
		v = p.PriceINR
	default:
		v = p.PriceUSD
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// LineAmount is the unit price for the given currency multiplied by the
// line quantity.
func LineAmount(line domain.CartLine, currency domain.Currency) float64 {
	return UnitPrice(line.Product, currency) * float64(line.Quantity)
}

// Round applies the display rounding rule: USD amounts round to two
// decimal places, INR amounts to whole units. The asymmetry is a fixed
// domain rule.
func Round(v float64, currency domain.Currency) float64 {
	if currency == domain.CurrencyINR {
		return math.Round(v)
	}
	return math.Round(v*100) / 100
}

// Format renders an amount with the currency symbol: "$12.99" for USD,
// "₹999" for INR.
func Format(v float64, currency domain.Currency) string {
	if currency == domain.CurrencyINR {
		return fmt.Sprintf("₹%.0f", Round(v, currency))
	}
	return fmt.Sprintf("$%.2f", Round(v, currency))
}
